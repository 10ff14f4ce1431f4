// internal/app/features/companies/update.go
package companies

import (
	"context"
	"net/http"
	"time"

	"github.com/seedscope/seedscope/internal/app/features/shared"
	companystore "github.com/seedscope/seedscope/internal/app/store/companies"
	"github.com/seedscope/seedscope/internal/app/system/apperr"
	"github.com/seedscope/seedscope/internal/app/system/authz"
	"github.com/seedscope/seedscope/internal/app/system/htmlsanitize"
	"github.com/seedscope/seedscope/internal/app/system/inputval"
	"github.com/seedscope/seedscope/internal/app/system/timeouts"
	"github.com/seedscope/seedscope/internal/app/system/webjson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type updateRequest struct {
	OrganizationName *string    `json:"organization_name"`
	Description      *string    `json:"description"`
	Location         *string    `json:"location"`
	Industries       []string   `json:"industries"`
	ImageURL         *string    `json:"image_url"`
	FundedDate       *time.Time `json:"funded_date"`
	OperatingStatus  *string    `json:"operating_status"`
	Owners           []string   `json:"owners"`
	ContactEmail     *string    `json:"contact_email"`
	ContactPhone     *string    `json:"contact_phone"`
	Website          *string    `json:"website"`
	AnnualRevenue    *float64   `json:"annual_revenue"`

	Categories         []string `json:"categories"`
	FundingTypes       []string `json:"funding_types"`
	SDGFocus           []string `json:"sdg_focus"`
	FundingInstruments []string `json:"funding_instruments"`
	FundingRounds      []string `json:"funding_rounds"`
	Sector             []string `json:"sector"`
	InvestmentAsk      []string `json:"investment_ask"`
	FundedBy           []string `json:"funded_by"`
}

func (req *updateRequest) toStoreUpdate() (companystore.CompanyUpdate, error) {
	var v inputval.Result
	if req.OrganizationName != nil {
		v.Require(*req.OrganizationName, "Organization name")
		v.MaxLen(*req.OrganizationName, 200, "Organization name")
	}
	if req.ContactEmail != nil {
		v.Email(*req.ContactEmail, "Contact email")
	}
	if req.AnnualRevenue != nil {
		v.NonNegative(*req.AnnualRevenue, "Annual revenue")
	}
	if v.HasErrors() {
		return companystore.CompanyUpdate{}, apperr.Validation(v.First())
	}

	upd := companystore.CompanyUpdate{
		OrganizationName: req.OrganizationName,
		Location:         req.Location,
		Industries:       req.Industries,
		ImageURL:         req.ImageURL,
		FundedDate:       req.FundedDate,
		OperatingStatus:  req.OperatingStatus,
		Owners:           req.Owners,
		ContactEmail:     req.ContactEmail,
		ContactPhone:     req.ContactPhone,
		Website:          req.Website,
		AnnualRevenue:    req.AnnualRevenue,
	}
	if req.Description != nil {
		clean := htmlsanitize.Sanitize(*req.Description)
		upd.Description = &clean
	}

	for field, pair := range map[string]struct {
		hexes []string
		dst   *[]primitive.ObjectID
	}{
		"categories":          {req.Categories, &upd.Categories},
		"funding_types":       {req.FundingTypes, &upd.FundingTypes},
		"sdg_focus":           {req.SDGFocus, &upd.SDGFocus},
		"funding_instruments": {req.FundingInstruments, &upd.FundingInstruments},
		"funding_rounds":      {req.FundingRounds, &upd.FundingRounds},
		"sector":              {req.Sector, &upd.Sector},
		"investment_ask":      {req.InvestmentAsk, &upd.InvestmentAsk},
		"funded_by":           {req.FundedBy, &upd.FundedBy},
	} {
		ids, err := shared.ParseIDs(field, pair.hexes)
		if err != nil {
			return companystore.CompanyUpdate{}, err
		}
		*pair.dst = ids
	}
	return upd, nil
}

// Update handles PUT /companies/{id}. Only the owner or an admin may
// update; a non-owner gets 403, not 404.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	id, err := shared.URLID(r)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}

	var req updateRequest
	if err := webjson.Decode(r, &req); err != nil {
		webjson.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}
	upd, err := req.toStoreUpdate()
	if err != nil {
		webjson.FromErr(w, err)
		return
	}

	co, err := h.Store.Update(ctx, id, authz.CallerID(r), authz.IsAdmin(r), upd)
	if err != nil {
		if !apperr.IsNotFound(err) && !apperr.IsUnauthorized(err) {
			h.Log.Error("companies: update failed", zap.String("id", id.Hex()), zap.Error(err))
		}
		webjson.FromErr(w, err)
		return
	}

	if upd.Categories != nil {
		if err := h.Categories.PushCompanyID(ctx, co.Categories, co.ID); err != nil {
			h.Log.Warn("companies: category reverse-index push failed",
				zap.String("company_id", co.ID.Hex()), zap.Error(err))
		}
	}

	webjson.Write(w, http.StatusOK, h.Populate.Company(ctx, co))
}
