// internal/app/features/investors/update.go
package investors

import (
	"context"
	"net/http"

	"github.com/seedscope/seedscope/internal/app/features/shared"
	investorstore "github.com/seedscope/seedscope/internal/app/store/investors"
	"github.com/seedscope/seedscope/internal/app/system/apperr"
	"github.com/seedscope/seedscope/internal/app/system/authz"
	"github.com/seedscope/seedscope/internal/app/system/htmlsanitize"
	"github.com/seedscope/seedscope/internal/app/system/inputval"
	"github.com/seedscope/seedscope/internal/app/system/timeouts"
	"github.com/seedscope/seedscope/internal/app/system/webjson"
	"github.com/seedscope/seedscope/internal/domain/models"
	"go.uber.org/zap"
)

type updateRequest struct {
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`

	TotalAmountFunded   *float64 `json:"total_amount_funded"`
	HighestAmountFunded *float64 `json:"highest_amount_funded"`

	FundingTypes       []string `json:"funding_types"`
	FundingRounds      []string `json:"funding_rounds"`
	FundingInstruments []string `json:"funding_instruments"`
	TicketSize         []string `json:"ticket_size"`
	Categories         []string `json:"categories"`
	FundedCompanies    []string `json:"funded_companies"`

	IndividualDetails  *models.IndividualDetails  `json:"individual_details"`
	InstitutionDetails *models.InstitutionDetails `json:"institution_details"`
}

func (req *updateRequest) toStoreUpdate() (investorstore.InvestorUpdate, error) {
	var v inputval.Result
	if req.Email != nil {
		v.Email(*req.Email, "Email")
	}
	if req.TotalAmountFunded != nil {
		v.NonNegative(*req.TotalAmountFunded, "Total amount funded")
	}
	if req.HighestAmountFunded != nil {
		v.NonNegative(*req.HighestAmountFunded, "Highest amount funded")
	}
	if req.IndividualDetails != nil {
		v.Require(req.IndividualDetails.FirstName, "First name")
		req.IndividualDetails.Bio = htmlsanitize.Sanitize(req.IndividualDetails.Bio)
	}
	if req.InstitutionDetails != nil {
		v.Require(req.InstitutionDetails.OrganizationName, "Organization name")
		v.Email(req.InstitutionDetails.ContactEmail, "Contact email")
		req.InstitutionDetails.Description = htmlsanitize.Sanitize(req.InstitutionDetails.Description)
	}
	if v.HasErrors() {
		return investorstore.InvestorUpdate{}, apperr.Validation(v.First())
	}

	upd := investorstore.InvestorUpdate{
		Email:               req.Email,
		PhoneNumber:         req.PhoneNumber,
		TotalAmountFunded:   req.TotalAmountFunded,
		HighestAmountFunded: req.HighestAmountFunded,
		IndividualDetails:   req.IndividualDetails,
		InstitutionDetails:  req.InstitutionDetails,
	}

	var err error
	if upd.FundingTypes, err = shared.ParseIDs("funding_types", req.FundingTypes); err != nil {
		return investorstore.InvestorUpdate{}, err
	}
	if upd.FundingRounds, err = shared.ParseIDs("funding_rounds", req.FundingRounds); err != nil {
		return investorstore.InvestorUpdate{}, err
	}
	if upd.FundingInstruments, err = shared.ParseIDs("funding_instruments", req.FundingInstruments); err != nil {
		return investorstore.InvestorUpdate{}, err
	}
	if upd.TicketSize, err = shared.ParseIDs("ticket_size", req.TicketSize); err != nil {
		return investorstore.InvestorUpdate{}, err
	}
	if upd.Categories, err = shared.ParseIDs("categories", req.Categories); err != nil {
		return investorstore.InvestorUpdate{}, err
	}
	if upd.FundedCompanies, err = shared.ParseIDs("funded_companies", req.FundedCompanies); err != nil {
		return investorstore.InvestorUpdate{}, err
	}
	return upd, nil
}

// Update handles PUT /investors/{id}. Ownership rules match companies:
// owner or admin, 403 on mismatch. The type tag cannot change.
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

	inv, err := h.Store.Update(ctx, id, authz.CallerID(r), authz.IsAdmin(r), upd)
	if err != nil {
		if !apperr.IsNotFound(err) && !apperr.IsUnauthorized(err) {
			h.Log.Error("investors: update failed", zap.String("id", id.Hex()), zap.Error(err))
		}
		webjson.FromErr(w, err)
		return
	}
	webjson.Write(w, http.StatusOK, h.Populate.Investor(ctx, inv))
}
