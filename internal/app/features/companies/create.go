// internal/app/features/companies/create.go
package companies

import (
	"context"
	"net/http"
	"time"

	"github.com/seedscope/seedscope/internal/app/features/shared"
	"github.com/seedscope/seedscope/internal/app/system/apperr"
	"github.com/seedscope/seedscope/internal/app/system/authz"
	"github.com/seedscope/seedscope/internal/app/system/htmlsanitize"
	"github.com/seedscope/seedscope/internal/app/system/inputval"
	"github.com/seedscope/seedscope/internal/app/system/timeouts"
	"github.com/seedscope/seedscope/internal/app/system/webjson"
	"github.com/seedscope/seedscope/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type createRequest struct {
	OrganizationName string     `json:"organization_name"`
	Description      string     `json:"description"`
	Location         string     `json:"location"`
	Industries       []string   `json:"industries"`
	ImageURL         string     `json:"image_url"`
	FundedDate       *time.Time `json:"funded_date"`
	OperatingStatus  string     `json:"operating_status"`
	Owners           []string   `json:"owners"`
	ContactEmail     string     `json:"contact_email"`
	ContactPhone     string     `json:"contact_phone"`
	Website          string     `json:"website"`
	AnnualRevenue    float64    `json:"annual_revenue"`

	Categories         []string `json:"categories"`
	FundingTypes       []string `json:"funding_types"`
	SDGFocus           []string `json:"sdg_focus"`
	FundingInstruments []string `json:"funding_instruments"`
	FundingRounds      []string `json:"funding_rounds"`
	Sector             []string `json:"sector"`
	InvestmentAsk      []string `json:"investment_ask"`
	FundedBy           []string `json:"funded_by"`
}

func (req *createRequest) validate() error {
	var v inputval.Result
	v.Require(req.OrganizationName, "Organization name")
	v.MaxLen(req.OrganizationName, 200, "Organization name")
	v.Email(req.ContactEmail, "Contact email")
	v.NonNegative(req.AnnualRevenue, "Annual revenue")
	if v.HasErrors() {
		return apperr.Validation(v.First())
	}
	return nil
}

func (req *createRequest) refs() (map[string][]primitive.ObjectID, error) {
	out := map[string][]primitive.ObjectID{}
	for field, hexes := range map[string][]string{
		"categories":          req.Categories,
		"funding_types":       req.FundingTypes,
		"sdg_focus":           req.SDGFocus,
		"funding_instruments": req.FundingInstruments,
		"funding_rounds":      req.FundingRounds,
		"sector":              req.Sector,
		"investment_ask":      req.InvestmentAsk,
		"funded_by":           req.FundedBy,
	} {
		ids, err := shared.ParseIDs(field, hexes)
		if err != nil {
			return nil, err
		}
		out[field] = ids
	}
	return out, nil
}

// Create handles POST /companies. The new record is owned by the
// signed-in caller. After the insert the referenced categories get the
// company id pushed onto their reverse index; that second write is
// best-effort.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var req createRequest
	if err := webjson.Decode(r, &req); err != nil {
		webjson.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if err := req.validate(); err != nil {
		webjson.FromErr(w, err)
		return
	}
	refs, err := req.refs()
	if err != nil {
		webjson.FromErr(w, err)
		return
	}

	co := models.Company{
		OrganizationName:   req.OrganizationName,
		Description:        htmlsanitize.Sanitize(req.Description),
		Location:           req.Location,
		Industries:         req.Industries,
		ImageURL:           req.ImageURL,
		FundedDate:         req.FundedDate,
		OperatingStatus:    req.OperatingStatus,
		Owners:             req.Owners,
		ContactEmail:       req.ContactEmail,
		ContactPhone:       req.ContactPhone,
		Website:            req.Website,
		AnnualRevenue:      req.AnnualRevenue,
		Categories:         refs["categories"],
		FundingTypes:       refs["funding_types"],
		SDGFocus:           refs["sdg_focus"],
		FundingInstruments: refs["funding_instruments"],
		FundingRounds:      refs["funding_rounds"],
		Sector:             refs["sector"],
		InvestmentAsk:      refs["investment_ask"],
		FundedBy:           refs["funded_by"],
	}

	created, err := h.Store.Create(ctx, co, authz.CallerID(r))
	if err != nil {
		h.Log.Error("companies: create failed", zap.Error(err))
		webjson.FromErr(w, err)
		return
	}

	if err := h.Categories.PushCompanyID(ctx, created.Categories, created.ID); err != nil {
		h.Log.Warn("companies: category reverse-index push failed",
			zap.String("company_id", created.ID.Hex()), zap.Error(err))
	}

	webjson.Write(w, http.StatusCreated, h.Populate.Company(ctx, &created))
}
