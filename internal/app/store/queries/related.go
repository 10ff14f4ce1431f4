// internal/app/store/queries/related.go

// Package queries holds cross-collection read queries that do not
// belong to a single entity store.
package queries

import (
	"context"

	"github.com/seedscope/seedscope/internal/app/system/apperr"
	"github.com/seedscope/seedscope/internal/app/system/paging"
	"github.com/seedscope/seedscope/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RelatedFinder discovers entities related to a root entity by shared
// category: two records are related when their category id arrays
// intersect. The root itself is always excluded, and a root with no
// categories yields an empty page with zero total pages rather than an
// error.
type RelatedFinder struct {
	companies *mongo.Collection
	investors *mongo.Collection
}

// NewRelatedFinder builds a finder over the companies collection and
// the investor base mirror.
func NewRelatedFinder(companies, investors *mongo.Collection) *RelatedFinder {
	return &RelatedFinder{companies: companies, investors: investors}
}

// rootCategories projects just the category ids off the root document.
func rootCategories(ctx context.Context, col *mongo.Collection, id primitive.ObjectID, kind string) ([]primitive.ObjectID, error) {
	var doc struct {
		Categories []primitive.ObjectID `bson:"categories"`
	}
	err := col.FindOne(ctx,
		bson.M{"_id": id},
		options.FindOne().SetProjection(bson.M{"categories": 1}),
	).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound(kind)
		}
		return nil, err
	}
	return doc.Categories, nil
}

func relatedPage[T any](ctx context.Context, col *mongo.Collection, rootID primitive.ObjectID, cats []primitive.ObjectID, p paging.Params) ([]T, int, error) {
	if len(cats) == 0 {
		return []T{}, 0, nil
	}

	filter := bson.M{
		"_id":        bson.M{"$ne": rootID},
		"categories": bson.M{"$in": cats},
	}

	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit64())
	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, p.TotalPages(total), nil
}

// RelatedCompanies returns companies sharing at least one category
// with the given company.
func (f *RelatedFinder) RelatedCompanies(ctx context.Context, companyID primitive.ObjectID, p paging.Params) ([]models.Company, int, error) {
	cats, err := rootCategories(ctx, f.companies, companyID, "company")
	if err != nil {
		return nil, 0, err
	}
	return relatedPage[models.Company](ctx, f.companies, companyID, cats, p)
}

// RelatedInvestors returns investors sharing at least one category
// with the given investor. It reads the slim base mirror, so results
// carry the union shape without detail blocks.
func (f *RelatedFinder) RelatedInvestors(ctx context.Context, investorID primitive.ObjectID, p paging.Params) ([]models.Investor, int, error) {
	cats, err := rootCategories(ctx, f.investors, investorID, "investor")
	if err != nil {
		return nil, 0, err
	}
	return relatedPage[models.Investor](ctx, f.investors, investorID, cats, p)
}

// InvestorsForCompany returns investors whose categories intersect the
// company's, for cross-entity matchmaking.
func (f *RelatedFinder) InvestorsForCompany(ctx context.Context, companyID primitive.ObjectID, p paging.Params) ([]models.Investor, int, error) {
	cats, err := rootCategories(ctx, f.companies, companyID, "company")
	if err != nil {
		return nil, 0, err
	}
	// The company id can never collide with an investor id, but the
	// exclusion filter is harmless and keeps one code path.
	return relatedPage[models.Investor](ctx, f.investors, companyID, cats, p)
}
