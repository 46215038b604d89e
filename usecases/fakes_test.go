package usecases

import (
	"sort"
	"strings"
	"time"

	"room-rental-server/entities"

	"gorm.io/gorm"
)

// In-memory repository fakes. They mirror the postgres implementations'
// contracts: newest-first ordering where the real queries order by
// created_at DESC, gorm.ErrRecordNotFound for misses and
// gorm.ErrDuplicatedKey for unique-pair violations.

var fakeClock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeListingRepo struct {
	listings map[uint]*entities.Listing
	nextID   uint
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[uint]*entities.Listing), nextID: 1}
}

func (r *fakeListingRepo) Create(listing *entities.Listing) error {
	listing.ID = r.nextID
	listing.CreatedAt = fakeClock.Add(time.Duration(r.nextID) * time.Minute)
	listing.UpdatedAt = listing.CreatedAt
	r.nextID++
	stored := *listing
	r.listings[listing.ID] = &stored
	return nil
}

func (r *fakeListingRepo) GetByID(id uint) (*entities.Listing, error) {
	listing, ok := r.listings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *listing
	return &copied, nil
}

func (r *fakeListingRepo) GetByIDs(ids []uint) ([]entities.Listing, error) {
	var out []entities.Listing
	for _, id := range ids {
		if listing, ok := r.listings[id]; ok {
			out = append(out, *listing)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) all() []entities.Listing {
	out := make([]entities.Listing, 0, len(r.listings))
	for _, l := range r.listings {
		out = append(out, *l)
	}
	return out
}

func (r *fakeListingRepo) GetAll() ([]entities.Listing, error) {
	out := r.all()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeListingRepo) GetByOwnerID(ownerID uint) ([]entities.Listing, error) {
	var out []entities.Listing
	for _, l := range r.all() {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeListingRepo) GetAvailable(location, listingType string) ([]entities.Listing, error) {
	var out []entities.Listing
	for _, l := range r.all() {
		if !l.Available {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(l.Location), strings.ToLower(location)) {
			continue
		}
		if listingType != "" && l.Type != listingType {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeListingRepo) Update(listing *entities.Listing) error {
	if _, ok := r.listings[listing.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *listing
	stored.UpdatedAt = stored.CreatedAt.Add(time.Hour)
	r.listings[listing.ID] = &stored
	return nil
}

func (r *fakeListingRepo) Delete(id uint) error {
	delete(r.listings, id)
	return nil
}

type fakeUserRepo struct {
	users  map[uint]*entities.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*entities.User), nextID: 1}
}

func (r *fakeUserRepo) Create(user *entities.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.nextID
	r.nextID++
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetNamesByIDs(ids []uint) (map[uint]string, error) {
	names := make(map[uint]string)
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			names[id] = u.Name
		}
	}
	return names, nil
}

func (r *fakeUserRepo) Update(user *entities.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

// mustUser seeds an account directly.
func (r *fakeUserRepo) mustUser(name, email, phone string) *entities.User {
	user := &entities.User{Name: name, Email: email, Phone: phone, IsOwner: true}
	if err := r.Create(user); err != nil {
		panic(err)
	}
	return user
}

type fakeReviewRepo struct {
	reviews []entities.Review
	nextID  uint
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{nextID: 1}
}

func (r *fakeReviewRepo) Create(review *entities.Review) error {
	for _, existing := range r.reviews {
		if existing.UserID == review.UserID && existing.ListingID == review.ListingID {
			return gorm.ErrDuplicatedKey
		}
	}
	review.ID = r.nextID
	review.CreatedAt = fakeClock.Add(time.Duration(r.nextID) * time.Minute)
	r.nextID++
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *fakeReviewRepo) GetByListingID(listingID uint) ([]entities.Review, error) {
	var out []entities.Review
	for _, review := range r.reviews {
		if review.ListingID == listingID {
			out = append(out, review)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeReviewRepo) ExistsByUserAndListing(userID, listingID uint) (bool, error) {
	for _, review := range r.reviews {
		if review.UserID == userID && review.ListingID == listingID {
			return true, nil
		}
	}
	return false, nil
}

type fakeFavoriteRepo struct {
	favorites []entities.Favorite
	nextID    uint
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{nextID: 1}
}

func (r *fakeFavoriteRepo) Create(favorite *entities.Favorite) error {
	for _, existing := range r.favorites {
		if existing.UserID == favorite.UserID && existing.ListingID == favorite.ListingID {
			return gorm.ErrDuplicatedKey
		}
	}
	favorite.ID = r.nextID
	favorite.CreatedAt = fakeClock.Add(time.Duration(r.nextID) * time.Minute)
	r.nextID++
	r.favorites = append(r.favorites, *favorite)
	return nil
}

func (r *fakeFavoriteRepo) GetByUserID(userID uint) ([]entities.Favorite, error) {
	var out []entities.Favorite
	for _, f := range r.favorites {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeFavoriteRepo) Delete(userID, listingID uint) error {
	for i, f := range r.favorites {
		if f.UserID == userID && f.ListingID == listingID {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeHistoryRepo struct {
	entries []entities.SearchHistory
	nextID  uint
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{nextID: 1}
}

func (r *fakeHistoryRepo) Create(entry *entities.SearchHistory) error {
	entry.ID = r.nextID
	entry.CreatedAt = fakeClock.Add(time.Duration(r.nextID) * time.Minute)
	r.nextID++
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeHistoryRepo) GetRecentByUserID(userID uint, limit int) ([]entities.SearchHistory, error) {
	var out []entities.SearchHistory
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
