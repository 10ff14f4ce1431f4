// internal/app/features/investors/create.go
package investors

import (
	"context"
	"net/http"

	"github.com/seedscope/seedscope/internal/app/features/shared"
	"github.com/seedscope/seedscope/internal/app/system/apperr"
	"github.com/seedscope/seedscope/internal/app/system/authz"
	"github.com/seedscope/seedscope/internal/app/system/htmlsanitize"
	"github.com/seedscope/seedscope/internal/app/system/inputval"
	"github.com/seedscope/seedscope/internal/app/system/timeouts"
	"github.com/seedscope/seedscope/internal/app/system/webjson"
	"github.com/seedscope/seedscope/internal/domain/models"
	"go.uber.org/zap"
)

type createRequest struct {
	Type        string `json:"type"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`

	TotalAmountFunded   float64 `json:"total_amount_funded"`
	HighestAmountFunded float64 `json:"highest_amount_funded"`

	FundingTypes       []string `json:"funding_types"`
	FundingRounds      []string `json:"funding_rounds"`
	FundingInstruments []string `json:"funding_instruments"`
	TicketSize         []string `json:"ticket_size"`
	Categories         []string `json:"categories"`
	FundedCompanies    []string `json:"funded_companies"`

	IndividualDetails  *models.IndividualDetails  `json:"individual_details"`
	InstitutionDetails *models.InstitutionDetails `json:"institution_details"`
}

func (req *createRequest) toModel() (models.Investor, error) {
	var v inputval.Result
	v.Require(req.Type, "Investor type")
	v.Email(req.Email, "Email")
	v.NonNegative(req.TotalAmountFunded, "Total amount funded")
	v.NonNegative(req.HighestAmountFunded, "Highest amount funded")
	switch req.Type {
	case models.InvestorTypeIndividual:
		if req.IndividualDetails != nil {
			v.Require(req.IndividualDetails.FirstName, "First name")
			req.IndividualDetails.Bio = htmlsanitize.Sanitize(req.IndividualDetails.Bio)
		}
	case models.InvestorTypeInstitution:
		if req.InstitutionDetails != nil {
			v.Require(req.InstitutionDetails.OrganizationName, "Organization name")
			v.Email(req.InstitutionDetails.ContactEmail, "Contact email")
			req.InstitutionDetails.Description = htmlsanitize.Sanitize(req.InstitutionDetails.Description)
		}
	}
	if v.HasErrors() {
		return models.Investor{}, apperr.Validation(v.First())
	}

	inv := models.Investor{
		Type:                req.Type,
		Email:               req.Email,
		PhoneNumber:         req.PhoneNumber,
		TotalAmountFunded:   req.TotalAmountFunded,
		HighestAmountFunded: req.HighestAmountFunded,
		IndividualDetails:   req.IndividualDetails,
		InstitutionDetails:  req.InstitutionDetails,
	}

	var err error
	if inv.FundingTypes, err = shared.ParseIDs("funding_types", req.FundingTypes); err != nil {
		return models.Investor{}, err
	}
	if inv.FundingRounds, err = shared.ParseIDs("funding_rounds", req.FundingRounds); err != nil {
		return models.Investor{}, err
	}
	if inv.FundingInstruments, err = shared.ParseIDs("funding_instruments", req.FundingInstruments); err != nil {
		return models.Investor{}, err
	}
	if inv.TicketSize, err = shared.ParseIDs("ticket_size", req.TicketSize); err != nil {
		return models.Investor{}, err
	}
	if inv.Categories, err = shared.ParseIDs("categories", req.Categories); err != nil {
		return models.Investor{}, err
	}
	if inv.FundedCompanies, err = shared.ParseIDs("funded_companies", req.FundedCompanies); err != nil {
		return models.Investor{}, err
	}
	return inv, nil
}

// Create handles POST /investors. The type tag routes the record to
// its collection; a missing or mismatched detail block is rejected.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var req createRequest
	if err := webjson.Decode(r, &req); err != nil {
		webjson.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}
	inv, err := req.toModel()
	if err != nil {
		webjson.FromErr(w, err)
		return
	}

	created, err := h.Store.Create(ctx, inv, authz.CallerID(r))
	if err != nil {
		h.Log.Error("investors: create failed", zap.Error(err))
		webjson.FromErr(w, err)
		return
	}
	webjson.Write(w, http.StatusCreated, h.Populate.Investor(ctx, &created))
}
