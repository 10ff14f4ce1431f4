// internal/app/populate/populate.go

// Package populate resolves the raw reference-id arrays on stored
// documents into named LookupRef/RangeRef values for API responses.
//
// Each declared reference field costs exactly one $in batch query per
// page, regardless of how many documents the page holds. Resolution is
// read-side and degrades gracefully: a failed or dangling reference
// yields an empty (never nil) slice for that field, and the response
// still succeeds.
package populate

import (
	"context"

	lookupstore "github.com/seedscope/seedscope/internal/app/store/lookups"
	peoplestore "github.com/seedscope/seedscope/internal/app/store/people"
	rangestore "github.com/seedscope/seedscope/internal/app/store/ranges"
	"github.com/seedscope/seedscope/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Populator resolves references against the lookup and range tables.
type Populator struct {
	categories         *lookupstore.Store
	fundingTypes       *lookupstore.Store
	sdgFocuses         *lookupstore.Store
	sectors            *lookupstore.Store
	fundingInstruments *lookupstore.Store
	fundingRounds      *lookupstore.Store

	ticketSizes    *rangestore.Store
	investmentAsks *rangestore.Store

	people *peoplestore.Store

	log *zap.Logger
}

// Deps bundles the stores a Populator reads from.
type Deps struct {
	Categories         *lookupstore.Store
	FundingTypes       *lookupstore.Store
	SDGFocuses         *lookupstore.Store
	Sectors            *lookupstore.Store
	FundingInstruments *lookupstore.Store
	FundingRounds      *lookupstore.Store
	TicketSizes        *rangestore.Store
	InvestmentAsks     *rangestore.Store
	People             *peoplestore.Store
}

func New(d Deps, log *zap.Logger) *Populator {
	return &Populator{
		categories:         d.Categories,
		fundingTypes:       d.FundingTypes,
		sdgFocuses:         d.SDGFocuses,
		sectors:            d.Sectors,
		fundingInstruments: d.FundingInstruments,
		fundingRounds:      d.FundingRounds,
		ticketSizes:        d.TicketSizes,
		investmentAsks:     d.InvestmentAsks,
		people:             d.People,
		log:                log,
	}
}

// lookupRefs resolves ids against one lookup table, preserving the
// order of ids and dropping dangling ones. Errors degrade to an empty
// slice.
func (p *Populator) lookupRefs(ctx context.Context, s *lookupstore.Store, field string, ids []primitive.ObjectID) []models.LookupRef {
	out := []models.LookupRef{}
	if len(ids) == 0 {
		return out
	}
	rows, err := s.GetByIDs(ctx, ids)
	if err != nil {
		p.log.Warn("populate: lookup batch failed", zap.String("field", field), zap.Error(err))
		return out
	}
	byID := make(map[primitive.ObjectID]models.LookupRef, len(rows))
	for _, row := range rows {
		byID[row.ID] = row.Ref()
	}
	for _, id := range ids {
		if ref, ok := byID[id]; ok {
			out = append(out, ref)
		}
	}
	return out
}

// rangeRefs is lookupRefs for the range tables.
func (p *Populator) rangeRefs(ctx context.Context, s *rangestore.Store, field string, ids []primitive.ObjectID) []models.RangeRef {
	out := []models.RangeRef{}
	if len(ids) == 0 {
		return out
	}
	rows, err := s.GetByIDs(ctx, ids)
	if err != nil {
		p.log.Warn("populate: range batch failed", zap.String("field", field), zap.Error(err))
		return out
	}
	byID := make(map[primitive.ObjectID]models.RangeRef, len(rows))
	for _, row := range rows {
		byID[row.ID] = row.Ref()
	}
	for _, id := range ids {
		if ref, ok := byID[id]; ok {
			out = append(out, ref)
		}
	}
	return out
}

// Company resolves one company's reference fields and attaches its
// people. One batch query per field, run concurrently.
func (p *Populator) Company(ctx context.Context, co *models.Company) *models.CompanyDetail {
	d := &models.CompanyDetail{
		ID:               co.ID,
		OrganizationName: co.OrganizationName,
		Description:      co.Description,
		Location:         co.Location,
		Industries:       co.Industries,
		ImageURL:         co.ImageURL,
		FundedDate:       co.FundedDate,
		OperatingStatus:  co.OperatingStatus,
		Owners:           co.Owners,
		ContactEmail:     co.ContactEmail,
		ContactPhone:     co.ContactPhone,
		Website:          co.Website,
		AnnualRevenue:    co.AnnualRevenue,
		FundedBy:         co.FundedBy,
		CreatedBy:        co.CreatedBy,
		CreatedAt:        co.CreatedAt,
		UpdatedAt:        co.UpdatedAt,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { d.Categories = p.lookupRefs(gctx, p.categories, "categories", co.Categories); return nil })
	g.Go(func() error { d.FundingTypes = p.lookupRefs(gctx, p.fundingTypes, "funding_types", co.FundingTypes); return nil })
	g.Go(func() error { d.SDGFocus = p.lookupRefs(gctx, p.sdgFocuses, "sdg_focus", co.SDGFocus); return nil })
	g.Go(func() error {
		d.FundingInstruments = p.lookupRefs(gctx, p.fundingInstruments, "funding_instruments", co.FundingInstruments)
		return nil
	})
	g.Go(func() error { d.FundingRounds = p.lookupRefs(gctx, p.fundingRounds, "funding_rounds", co.FundingRounds); return nil })
	g.Go(func() error { d.Sector = p.lookupRefs(gctx, p.sectors, "sector", co.Sector); return nil })
	g.Go(func() error { d.InvestmentAsk = p.rangeRefs(gctx, p.investmentAsks, "investment_ask", co.InvestmentAsk); return nil })
	g.Go(func() error {
		people, err := p.people.ListByOrg(gctx, models.OrgRef{Kind: models.OrgCompany, ID: co.ID})
		if err != nil {
			p.log.Warn("populate: people fetch failed", zap.String("company_id", co.ID.Hex()), zap.Error(err))
			return nil
		}
		d.People = people
		return nil
	})
	_ = g.Wait()
	return d
}

// Companies resolves a page of companies. The union of each reference
// field's ids across the page is fetched in one $in query, then split
// back per document.
func (p *Populator) Companies(ctx context.Context, cos []models.Company) []models.CompanyDetail {
	out := make([]models.CompanyDetail, 0, len(cos))
	if len(cos) == 0 {
		return out
	}

	type lookupJob struct {
		store *lookupstore.Store
		field string
		ids   func(*models.Company) []primitive.ObjectID
		set   func(*models.CompanyDetail, []models.LookupRef)
	}
	jobs := []lookupJob{
		{p.categories, "categories",
			func(c *models.Company) []primitive.ObjectID { return c.Categories },
			func(d *models.CompanyDetail, r []models.LookupRef) { d.Categories = r }},
		{p.fundingTypes, "funding_types",
			func(c *models.Company) []primitive.ObjectID { return c.FundingTypes },
			func(d *models.CompanyDetail, r []models.LookupRef) { d.FundingTypes = r }},
		{p.sdgFocuses, "sdg_focus",
			func(c *models.Company) []primitive.ObjectID { return c.SDGFocus },
			func(d *models.CompanyDetail, r []models.LookupRef) { d.SDGFocus = r }},
		{p.fundingInstruments, "funding_instruments",
			func(c *models.Company) []primitive.ObjectID { return c.FundingInstruments },
			func(d *models.CompanyDetail, r []models.LookupRef) { d.FundingInstruments = r }},
		{p.fundingRounds, "funding_rounds",
			func(c *models.Company) []primitive.ObjectID { return c.FundingRounds },
			func(d *models.CompanyDetail, r []models.LookupRef) { d.FundingRounds = r }},
		{p.sectors, "sector",
			func(c *models.Company) []primitive.ObjectID { return c.Sector },
			func(d *models.CompanyDetail, r []models.LookupRef) { d.Sector = r }},
	}

	// Resolved maps, one per job, plus one for the single range field.
	lookupMaps := make([]map[primitive.ObjectID]models.LookupRef, len(jobs))
	var askMap map[primitive.ObjectID]models.RangeRef

	g, gctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			var all []primitive.ObjectID
			seen := map[primitive.ObjectID]struct{}{}
			for j := range cos {
				for _, id := range job.ids(&cos[j]) {
					if _, dup := seen[id]; !dup {
						seen[id] = struct{}{}
						all = append(all, id)
					}
				}
			}
			m := make(map[primitive.ObjectID]models.LookupRef)
			for _, ref := range p.lookupRefs(gctx, job.store, job.field, all) {
				m[ref.ID] = ref
			}
			lookupMaps[i] = m
			return nil
		})
	}
	g.Go(func() error {
		var all []primitive.ObjectID
		seen := map[primitive.ObjectID]struct{}{}
		for j := range cos {
			for _, id := range cos[j].InvestmentAsk {
				if _, dup := seen[id]; !dup {
					seen[id] = struct{}{}
					all = append(all, id)
				}
			}
		}
		askMap = make(map[primitive.ObjectID]models.RangeRef)
		for _, ref := range p.rangeRefs(gctx, p.investmentAsks, "investment_ask", all) {
			askMap[ref.ID] = ref
		}
		return nil
	})
	_ = g.Wait()

	pick := func(m map[primitive.ObjectID]models.LookupRef, ids []primitive.ObjectID) []models.LookupRef {
		refs := []models.LookupRef{}
		for _, id := range ids {
			if ref, ok := m[id]; ok {
				refs = append(refs, ref)
			}
		}
		return refs
	}

	for j := range cos {
		co := &cos[j]
		d := models.CompanyDetail{
			ID:               co.ID,
			OrganizationName: co.OrganizationName,
			Description:      co.Description,
			Location:         co.Location,
			Industries:       co.Industries,
			ImageURL:         co.ImageURL,
			FundedDate:       co.FundedDate,
			OperatingStatus:  co.OperatingStatus,
			Owners:           co.Owners,
			ContactEmail:     co.ContactEmail,
			ContactPhone:     co.ContactPhone,
			Website:          co.Website,
			AnnualRevenue:    co.AnnualRevenue,
			FundedBy:         co.FundedBy,
			CreatedBy:        co.CreatedBy,
			CreatedAt:        co.CreatedAt,
			UpdatedAt:        co.UpdatedAt,
		}
		for i, job := range jobs {
			job.set(&d, pick(lookupMaps[i], job.ids(co)))
		}
		asks := []models.RangeRef{}
		for _, id := range co.InvestmentAsk {
			if ref, ok := askMap[id]; ok {
				asks = append(asks, ref)
			}
		}
		d.InvestmentAsk = asks
		out = append(out, d)
	}
	return out
}

// Investor resolves one investor's reference fields and attaches its
// people.
func (p *Populator) Investor(ctx context.Context, inv *models.Investor) *models.InvestorDetail {
	d := &models.InvestorDetail{
		ID:                  inv.ID,
		Type:                inv.Type,
		Name:                inv.Name,
		Email:               inv.Email,
		PhoneNumber:         inv.PhoneNumber,
		TotalAmountFunded:   inv.TotalAmountFunded,
		HighestAmountFunded: inv.HighestAmountFunded,
		FundedCompanies:     inv.FundedCompanies,
		IndividualDetails:   inv.IndividualDetails,
		InstitutionDetails:  inv.InstitutionDetails,
		CreatedBy:           inv.CreatedBy,
		CreatedAt:           inv.CreatedAt,
		UpdatedAt:           inv.UpdatedAt,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { d.FundingTypes = p.lookupRefs(gctx, p.fundingTypes, "funding_types", inv.FundingTypes); return nil })
	g.Go(func() error { d.FundingRounds = p.lookupRefs(gctx, p.fundingRounds, "funding_rounds", inv.FundingRounds); return nil })
	g.Go(func() error {
		d.FundingInstruments = p.lookupRefs(gctx, p.fundingInstruments, "funding_instruments", inv.FundingInstruments)
		return nil
	})
	g.Go(func() error { d.TicketSize = p.rangeRefs(gctx, p.ticketSizes, "ticket_size", inv.TicketSize); return nil })
	g.Go(func() error {
		people, err := p.people.ListByOrg(gctx, models.OrgRef{Kind: models.OrgInvestor, ID: inv.ID})
		if err != nil {
			p.log.Warn("populate: people fetch failed", zap.String("investor_id", inv.ID.Hex()), zap.Error(err))
			return nil
		}
		d.People = people
		return nil
	})
	_ = g.Wait()
	return d
}

// Investors resolves a page of investors one by one. Investor pages
// are small (at most twice the page limit) and carry only four
// reference fields, so the per-document path is fine here.
func (p *Populator) Investors(ctx context.Context, invs []models.Investor) []models.InvestorDetail {
	out := make([]models.InvestorDetail, 0, len(invs))
	for i := range invs {
		out = append(out, *p.Investor(ctx, &invs[i]))
	}
	return out
}
