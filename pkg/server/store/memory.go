/*
Copyright 2026 the Stellar Burgers QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package store

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spjmurray/go-util/pkg/set"
	"github.com/stellarburgers/api-tests/pkg/openapi"

	"golang.org/x/crypto/bcrypt"
)

const (
	// refreshTokenBytes gives the 80 hex character refresh tokens the
	// service hands out.
	refreshTokenBytes = 40

	// DefaultFirstOrderNumber is where global order numbering starts.
	DefaultFirstOrderNumber = 10000

	// PageSize caps the number of orders returned by a listing.
	PageSize = 50
)

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// WithBcryptCost sets the password hashing cost.
func WithBcryptCost(cost int) Option {
	return func(s *MemoryStore) {
		s.cost = cost
	}
}

// WithFirstOrderNumber sets the number given to the first order.
func WithFirstOrderNumber(n int) Option {
	return func(s *MemoryStore) {
		s.nextNumber = n
	}
}

// WithCatalog replaces the seed ingredients.
func WithCatalog(ingredients []Ingredient) Option {
	return func(s *MemoryStore) {
		s.ingredients = slices.Clone(ingredients)
	}
}

// MemoryStore is a thread-safe, in-memory implementation of the service
// state: users, refresh tokens, the ingredient catalog and orders.
type MemoryStore struct {
	mu sync.RWMutex

	users         map[string]*User
	emails        map[string]string
	refreshTokens map[string]string
	orders        []*Order

	ingredients   []Ingredient
	ingredientIDs set.Set[string]
	nextNumber    int

	now  func() time.Time
	cost int
}

// New creates a store seeded with the default catalog.
func New(options ...Option) *MemoryStore {
	s := &MemoryStore{
		users:         map[string]*User{},
		emails:        map[string]string{},
		refreshTokens: map[string]string{},
		ingredients:   DefaultCatalog(),
		nextNumber:    DefaultFirstOrderNumber,
		now:           time.Now,
		cost:          bcrypt.DefaultCost,
	}

	for _, o := range options {
		o(s)
	}

	ids := make([]string, len(s.ingredients))

	for i := range s.ingredients {
		ids[i] = s.ingredients[i].ID
	}

	s.ingredientIDs = set.New[string](ids...)

	return s
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *MemoryStore) hash(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPasswordUnacceptable, err)
	}

	return hash, nil
}

// Register creates a new user.  The email is stored lower cased.
func (s *MemoryStore) Register(email, password, name string) (*User, error) {
	email = normalizeEmail(email)

	if email == "" || password == "" || name == "" {
		return nil, ErrMissingFields
	}

	hash, err := s.hash(password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.emails[email]; ok {
		return nil, ErrUserExists
	}

	now := s.now()

	user := &User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	s.users[user.ID] = user
	s.emails[email] = user.ID

	return clone(user), nil
}

// Authenticate checks a user's credentials.  Unknown emails and bad
// passwords are indistinguishable to the caller.
func (s *MemoryStore) Authenticate(email, password string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[normalizeEmail(email)]
	if !ok || password == "" {
		return nil, ErrInvalidCredentials
	}

	user := s.users[id]

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return clone(user), nil
}

// User looks up a user by ID.
func (s *MemoryStore) User(id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	return clone(user), nil
}

// UpdateUser applies a partial update.  Empty values are ignored, and an
// email already owned by someone else is rejected.
func (s *MemoryStore) UpdateUser(id string, patch UserPatch) (*User, error) {
	var hash []byte

	if patch.Password != nil && *patch.Password != "" {
		h, err := s.hash(*patch.Password)
		if err != nil {
			return nil, err
		}

		hash = h
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	if patch.Email != nil && *patch.Email != "" {
		email := normalizeEmail(*patch.Email)

		if owner, ok := s.emails[email]; ok && owner != id {
			return nil, ErrEmailTaken
		}

		delete(s.emails, user.Email)

		user.Email = email
		s.emails[email] = id
	}

	if patch.Name != nil && *patch.Name != "" {
		user.Name = *patch.Name
	}

	if hash != nil {
		user.PasswordHash = hash
	}

	user.UpdatedAt = s.now()

	return clone(user), nil
}

// DeleteUser removes a user along with any refresh tokens it holds.
// Orders are kept so the global totals never go backwards.
func (s *MemoryStore) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return ErrUserNotFound
	}

	delete(s.users, id)
	delete(s.emails, user.Email)

	for token, owner := range s.refreshTokens {
		if owner == id {
			delete(s.refreshTokens, token)
		}
	}

	return nil
}

// IssueRefreshToken creates and records a refresh token for the user.
func (s *MemoryStore) IssueRefreshToken(userID string) (string, error) {
	buf := make([]byte, refreshTokenBytes)

	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	token := hex.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return "", ErrUserNotFound
	}

	s.refreshTokens[token] = userID

	return token, nil
}

// RevokeRefreshToken forgets a refresh token.
func (s *MemoryStore) RevokeRefreshToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.refreshTokens[token]; !ok {
		return ErrTokenNotFound
	}

	delete(s.refreshTokens, token)

	return nil
}

// Ingredients returns a copy of the catalog.
func (s *MemoryStore) Ingredients() []Ingredient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.ingredients)
}

func (s *MemoryStore) ingredient(id string) (Ingredient, bool) {
	for i := range s.ingredients {
		if s.ingredients[i].ID == id {
			return s.ingredients[i], true
		}
	}

	return Ingredient{}, false
}

// checkIngredients ensures every ID is well formed and in the catalog.
func (s *MemoryStore) checkIngredients(ids []string) error {
	for _, id := range ids {
		if !openapi.IsObjectID(id) {
			return fmt.Errorf("%w: %q", ErrMalformedIngredient, id)
		}
	}

	unknown := set.New[string](ids...).Difference(s.ingredientIDs)

	for id := range unknown.All() {
		return fmt.Errorf("%w: %s", ErrUnknownIngredient, id)
	}

	return nil
}

func orderName(ingredients []Ingredient) string {
	var labels []string

	for i := range ingredients {
		if !slices.Contains(labels, ingredients[i].Label) {
			labels = append(labels, ingredients[i].Label)
		}
	}

	return strings.Join(append(labels, "burger"), " ")
}

// CreateOrder places an order.  ownerID may be empty for an anonymous
// order.  The resolved ingredients are returned in request order.
func (s *MemoryStore) CreateOrder(ownerID string, ids []string) (*Order, []Ingredient, error) {
	if len(ids) == 0 {
		return nil, nil, ErrNoIngredients
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIngredients(ids); err != nil {
		return nil, nil, err
	}

	if ownerID != "" {
		if _, ok := s.users[ownerID]; !ok {
			return nil, nil, ErrUserNotFound
		}
	}

	ingredients := make([]Ingredient, len(ids))

	price := 0

	for i, id := range ids {
		ingredients[i], _ = s.ingredient(id)
		price += ingredients[i].Price
	}

	now := s.now()

	order := &Order{
		ID:            strings.ReplaceAll(uuid.NewString(), "-", "")[:24],
		IngredientIDs: slices.Clone(ids),
		OwnerID:       ownerID,
		Status:        OrderStatusDone,
		Name:          orderName(ingredients),
		Number:        s.nextNumber,
		Price:         price,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.nextNumber++

	s.orders = append(s.orders, order)

	return cloneOrder(order), ingredients, nil
}

// OrderPage is a listing of orders with running totals.
type OrderPage struct {
	Orders     []Order
	Total      int
	TotalToday int
}

// UserOrders lists a user's most recent orders, oldest first.  Totals
// are global, as the service reports them.
func (s *MemoryStore) UserOrders(ownerID string) (*OrderPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users[ownerID]; !ok {
		return nil, ErrUserNotFound
	}

	return s.page(func(o *Order) bool { return o.OwnerID == ownerID }), nil
}

// AllOrders lists the most recent orders of everyone, newest first.
func (s *MemoryStore) AllOrders() *OrderPage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	page := s.page(func(*Order) bool { return true })

	slices.Reverse(page.Orders)

	return page
}

func (s *MemoryStore) page(include func(*Order) bool) *OrderPage {
	now := s.now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	page := &OrderPage{
		Orders: []Order{},
		Total:  len(s.orders),
	}

	for _, o := range s.orders {
		if !o.CreatedAt.Before(midnight) {
			page.TotalToday++
		}

		if include(o) {
			page.Orders = append(page.Orders, *cloneOrder(o))
		}
	}

	if len(page.Orders) > PageSize {
		page.Orders = page.Orders[len(page.Orders)-PageSize:]
	}

	return page
}

func clone(u *User) *User {
	c := *u
	c.PasswordHash = slices.Clone(u.PasswordHash)

	return &c
}

func cloneOrder(o *Order) *Order {
	c := *o
	c.IngredientIDs = slices.Clone(o.IngredientIDs)

	return &c
}
