// internal/app/store/investors/investorstore.go

// Package investorstore presents individual and institutional
// investors as one logical entity over two physical collections.
//
// Reads probe individual_investors first and fall back to
// institution_investors; a lookup fails only when both collections
// miss. Listing supports two pagination modes, selected at
// construction: the legacy mode pages each collection independently
// and concatenates (a page can carry up to twice the limit), and the
// global mode merges both collections into a single ordering before
// slicing the page.
package investorstore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/seedscope/seedscope/internal/app/system/apperr"
	"github.com/seedscope/seedscope/internal/app/system/normalize"
	"github.com/seedscope/seedscope/internal/app/system/paging"
	"github.com/seedscope/seedscope/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// Collection names. Base holds a slim mirror of every investor and
// backs category-based related-investor discovery.
const (
	Individuals  = "individual_investors"
	Institutions = "institution_investors"
	Base         = "investors"
)

type Store struct {
	individuals  *mongo.Collection
	institutions *mongo.Collection
	base         *mongo.Collection

	// globalPaging selects the merged ordering for ListAll. Off by
	// default to preserve the concatenated page shape existing clients
	// rely on.
	globalPaging bool
}

func New(db *mongo.Database, globalPaging bool) *Store {
	return &Store{
		individuals:  db.Collection(Individuals),
		institutions: db.Collection(Institutions),
		base:         db.Collection(Base),
		globalPaging: globalPaging,
	}
}

// BaseCollection exposes the mirror collection for related-entity
// queries.
func (s *Store) BaseCollection() *mongo.Collection { return s.base }

func (s *Store) collectionFor(investorType string) (*mongo.Collection, error) {
	switch investorType {
	case models.InvestorTypeIndividual:
		return s.individuals, nil
	case models.InvestorTypeInstitution:
		return s.institutions, nil
	default:
		return nil, apperr.Validation(fmt.Sprintf("unknown investor type %q", investorType))
	}
}

// displayName derives the stored Name from the detail block so the
// union listing can sort and search without caring about type.
func displayName(inv *models.Investor) string {
	switch {
	case inv.IndividualDetails != nil:
		return normalize.Name(inv.IndividualDetails.FirstName + " " + inv.IndividualDetails.LastName)
	case inv.InstitutionDetails != nil:
		return normalize.Name(inv.InstitutionDetails.OrganizationName)
	default:
		return normalize.Name(inv.Name)
	}
}

// Create inserts the investor into the collection its type selects and
// mirrors a slim copy into the base collection. The mirror write is
// best-effort; losing it only hides the investor from related-entity
// discovery.
func (s *Store) Create(ctx context.Context, inv models.Investor, createdBy primitive.ObjectID) (models.Investor, error) {
	col, err := s.collectionFor(inv.Type)
	if err != nil {
		return models.Investor{}, err
	}
	switch inv.Type {
	case models.InvestorTypeIndividual:
		if inv.IndividualDetails == nil {
			return models.Investor{}, apperr.Validation("individual_details is required for an individual investor")
		}
		inv.InstitutionDetails = nil
	case models.InvestorTypeInstitution:
		if inv.InstitutionDetails == nil {
			return models.Investor{}, apperr.Validation("institution_details is required for an institution investor")
		}
		inv.IndividualDetails = nil
	}

	inv.Name = displayName(&inv)
	if inv.Name == "" {
		return models.Investor{}, apperr.Validation("investor name is required")
	}
	inv.NameCI = text.Fold(inv.Name)

	inv.ID = primitive.NewObjectID()
	inv.CreatedBy = createdBy
	now := time.Now()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	if _, err := col.InsertOne(ctx, inv); err != nil {
		return models.Investor{}, fmt.Errorf("insert %s investor: %w", inv.Type, err)
	}
	s.mirror(ctx, &inv)
	return inv, nil
}

func (s *Store) mirror(ctx context.Context, inv *models.Investor) {
	_, _ = s.base.UpdateOne(ctx,
		bson.M{"_id": inv.ID},
		bson.M{"$set": bson.M{
			"type":       inv.Type,
			"name":       inv.Name,
			"name_ci":    inv.NameCI,
			"categories": inv.Categories,
			"created_at": inv.CreatedAt,
			"updated_at": inv.UpdatedAt,
		}},
		options.Update().SetUpsert(true),
	)
}

// GetByID resolves the union: probe the individual collection, then
// the institution collection. NotFound only after both miss.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Investor, error) {
	var inv models.Investor
	err := s.individuals.FindOne(ctx, bson.M{"_id": id}).Decode(&inv)
	if err == nil {
		return &inv, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}
	err = s.institutions.FindOne(ctx, bson.M{"_id": id}).Decode(&inv)
	if err == nil {
		return &inv, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}
	return nil, apperr.NotFound("investor")
}

func listPage(ctx context.Context, col *mongo.Collection, filter bson.M, skip, limit int64) ([]models.Investor, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Investor
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func searchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	return bson.M{"name_ci": bson.M{"$regex": "^" + text.Fold(search)}}
}

// ListAll returns one page of the investor union plus the total page
// count over both collections combined.
//
// In legacy mode each collection is paged independently with the same
// (page, limit) and the slices are concatenated, individuals first; a
// full page therefore holds up to 2×limit entries. In global mode both
// collections are merged into a single created_at ordering and the
// page is sliced from the merged sequence, so a page never exceeds the
// limit.
func (s *Store) ListAll(ctx context.Context, p paging.Params, search string) ([]models.Investor, int, error) {
	filter := searchFilter(search)

	var (
		individuals, institutions []models.Investor
		nIndividual, nInstitution int64
	)
	g, gctx := errgroup.WithContext(ctx)

	fetchLimit := p.Limit64()
	fetchSkip := p.Skip()
	if s.globalPaging {
		// The page window can land anywhere in the merged ordering, so
		// each collection must supply everything up to the window's end.
		fetchLimit = p.Skip() + p.Limit64()
		fetchSkip = 0
	}

	g.Go(func() error {
		var err error
		individuals, err = listPage(gctx, s.individuals, filter, fetchSkip, fetchLimit)
		return err
	})
	g.Go(func() error {
		var err error
		institutions, err = listPage(gctx, s.institutions, filter, fetchSkip, fetchLimit)
		return err
	})
	g.Go(func() error {
		var err error
		nIndividual, err = s.individuals.CountDocuments(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		nInstitution, err = s.institutions.CountDocuments(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	totalPages := p.TotalPages(nIndividual + nInstitution)

	if !s.globalPaging {
		return append(individuals, institutions...), totalPages, nil
	}

	merged := append(individuals, institutions...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	start := int(p.Skip())
	if start >= len(merged) {
		return nil, totalPages, nil
	}
	end := start + p.Limit
	if end > len(merged) {
		end = len(merged)
	}
	return merged[start:end], totalPages, nil
}

// ListByType pages a single collection.
func (s *Store) ListByType(ctx context.Context, investorType string, p paging.Params, search string) ([]models.Investor, int, error) {
	col, err := s.collectionFor(investorType)
	if err != nil {
		return nil, 0, err
	}
	filter := searchFilter(search)

	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out, err := listPage(ctx, col, filter, p.Skip(), p.Limit64())
	if err != nil {
		return nil, 0, err
	}
	return out, p.TotalPages(total), nil
}

// InvestorUpdate carries the mutable fields for Update. Nil means
// unchanged.
type InvestorUpdate struct {
	Email       *string
	PhoneNumber *string

	TotalAmountFunded   *float64
	HighestAmountFunded *float64

	FundingTypes       []primitive.ObjectID
	FundingRounds      []primitive.ObjectID
	FundingInstruments []primitive.ObjectID
	TicketSize         []primitive.ObjectID
	Categories         []primitive.ObjectID
	FundedCompanies    []primitive.ObjectID

	IndividualDetails  *models.IndividualDetails
	InstitutionDetails *models.InstitutionDetails
}

// Update applies upd to whichever collection holds the investor, after
// verifying ownership. The type tag is immutable; a detail block for
// the other type is rejected.
func (s *Store) Update(ctx context.Context, id, callerID primitive.ObjectID, isAdmin bool, upd InvestorUpdate) (*models.Investor, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && existing.CreatedBy != callerID {
		return nil, apperr.ErrUnauthorized
	}
	if upd.IndividualDetails != nil && existing.Type != models.InvestorTypeIndividual {
		return nil, apperr.Validation("individual_details not allowed on an institution investor")
	}
	if upd.InstitutionDetails != nil && existing.Type != models.InvestorTypeInstitution {
		return nil, apperr.Validation("institution_details not allowed on an individual investor")
	}
	col, err := s.collectionFor(existing.Type)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now()}
	if upd.Email != nil {
		set["email"] = normalize.Email(*upd.Email)
	}
	if upd.PhoneNumber != nil {
		set["phone_number"] = *upd.PhoneNumber
	}
	if upd.TotalAmountFunded != nil {
		set["total_amount_funded"] = *upd.TotalAmountFunded
	}
	if upd.HighestAmountFunded != nil {
		set["highest_amount_funded"] = *upd.HighestAmountFunded
	}
	if upd.FundingTypes != nil {
		set["funding_types"] = upd.FundingTypes
	}
	if upd.FundingRounds != nil {
		set["funding_rounds"] = upd.FundingRounds
	}
	if upd.FundingInstruments != nil {
		set["funding_instruments"] = upd.FundingInstruments
	}
	if upd.TicketSize != nil {
		set["ticket_size"] = upd.TicketSize
	}
	if upd.Categories != nil {
		set["categories"] = upd.Categories
	}
	if upd.FundedCompanies != nil {
		set["funded_companies"] = upd.FundedCompanies
	}
	if upd.IndividualDetails != nil {
		set["individual_details"] = upd.IndividualDetails
		name := normalize.Name(upd.IndividualDetails.FirstName + " " + upd.IndividualDetails.LastName)
		set["name"] = name
		set["name_ci"] = text.Fold(name)
	}
	if upd.InstitutionDetails != nil {
		set["institution_details"] = upd.InstitutionDetails
		name := normalize.Name(upd.InstitutionDetails.OrganizationName)
		set["name"] = name
		set["name_ci"] = text.Fold(name)
	}

	res := col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var inv models.Investor
	if err := res.Decode(&inv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("investor")
		}
		return nil, err
	}
	s.mirror(ctx, &inv)
	return &inv, nil
}

// Delete removes the investor from its collection and the base mirror
// after the usual ownership check.
func (s *Store) Delete(ctx context.Context, id, callerID primitive.ObjectID, isAdmin bool) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && existing.CreatedBy != callerID {
		return apperr.ErrUnauthorized
	}
	col, err := s.collectionFor(existing.Type)
	if err != nil {
		return err
	}
	if _, err := col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}
	_, _ = s.base.DeleteOne(ctx, bson.M{"_id": id})
	return nil
}
