// internal/app/features/people/people.go
package people

import (
	"context"
	"net/http"

	"github.com/seedscope/seedscope/internal/app/features/shared"
	peoplestore "github.com/seedscope/seedscope/internal/app/store/people"
	"github.com/seedscope/seedscope/internal/app/system/apperr"
	"github.com/seedscope/seedscope/internal/app/system/inputval"
	"github.com/seedscope/seedscope/internal/app/system/paging"
	"github.com/seedscope/seedscope/internal/app/system/timeouts"
	"github.com/seedscope/seedscope/internal/app/system/webjson"
	"github.com/seedscope/seedscope/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// orgSummary is the resolved organization attached to a person
// response.
type orgSummary struct {
	ID   string         `json:"id"`
	Kind models.OrgKind `json:"kind"`
	Name string         `json:"name"`
}

// personDetail is a person plus its resolved organization. The
// organization is nil when the reference dangles; the person still
// renders.
type personDetail struct {
	models.Person
	Organization *orgSummary `json:"organization,omitempty"`
}

// resolveOrg dispatches on the reference tag. It touches exactly one
// collection and degrades to nil on any failure.
func (h *Handler) resolveOrg(ctx context.Context, org models.OrgRef) *orgSummary {
	switch org.Kind {
	case models.OrgCompany:
		co, err := h.Companies.GetByID(ctx, org.ID)
		if err != nil {
			if !apperr.IsNotFound(err) {
				h.Log.Warn("people: company resolve failed", zap.String("id", org.ID.Hex()), zap.Error(err))
			}
			return nil
		}
		return &orgSummary{ID: co.ID.Hex(), Kind: models.OrgCompany, Name: co.OrganizationName}
	case models.OrgInvestor:
		inv, err := h.Investors.GetByID(ctx, org.ID)
		if err != nil {
			if !apperr.IsNotFound(err) {
				h.Log.Warn("people: investor resolve failed", zap.String("id", org.ID.Hex()), zap.Error(err))
			}
			return nil
		}
		return &orgSummary{ID: inv.ID.Hex(), Kind: models.OrgInvestor, Name: inv.Name}
	default:
		return nil
	}
}

// List handles GET /people.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p := paging.Parse(r)
	rows, totalPages, err := h.Store.List(ctx, p, query.Search(r, "q"))
	if err != nil {
		h.Log.Error("people: list failed", zap.Error(err))
		webjson.FromErr(w, err)
		return
	}

	out := make([]personDetail, 0, len(rows))
	for i := range rows {
		out = append(out, personDetail{
			Person:       rows[i],
			Organization: h.resolveOrg(ctx, rows[i].Org),
		})
	}
	webjson.Write(w, http.StatusOK, shared.ListResponse[personDetail]{
		Data:       out,
		Page:       p.Page,
		TotalPages: totalPages,
	})
}

// Show handles GET /people/{id}.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := shared.URLID(r)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}
	p, err := h.Store.GetByID(ctx, id)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}
	webjson.Write(w, http.StatusOK, personDetail{
		Person:       *p,
		Organization: h.resolveOrg(ctx, p.Org),
	})
}

type createRequest struct {
	Title        string   `json:"title"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Email        string   `json:"email"`
	PhoneNumbers []string `json:"phone_numbers"`
	Position     string   `json:"position"`
	Department   string   `json:"department"`

	OrganizationType models.OrgKind `json:"organization_type"`
	OrganizationID   string         `json:"organization_id"`
}

// Create handles POST /people.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var req createRequest
	if err := webjson.Decode(r, &req); err != nil {
		webjson.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	var v inputval.Result
	v.Require(req.FirstName, "First name")
	v.Email(req.Email, "Email")
	if v.HasErrors() {
		webjson.FromErr(w, apperr.Validation(v.First()))
		return
	}

	orgIDs, err := shared.ParseIDs("organization_id", []string{req.OrganizationID})
	if err != nil {
		webjson.FromErr(w, err)
		return
	}

	created, err := h.Store.Create(ctx, models.Person{
		Title:        req.Title,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumbers: req.PhoneNumbers,
		Position:     req.Position,
		Department:   req.Department,
		Org:          models.OrgRef{Kind: req.OrganizationType, ID: orgIDs[0]},
	})
	if err != nil {
		webjson.FromErr(w, err)
		return
	}
	webjson.Write(w, http.StatusCreated, personDetail{
		Person:       created,
		Organization: h.resolveOrg(ctx, created.Org),
	})
}

type updateRequest struct {
	Title        *string  `json:"title"`
	FirstName    *string  `json:"first_name"`
	LastName     *string  `json:"last_name"`
	Email        *string  `json:"email"`
	PhoneNumbers []string `json:"phone_numbers"`
	Position     *string  `json:"position"`
	Department   *string  `json:"department"`
}

// Update handles PUT /people/{id}. The organization reference is
// immutable; move a person by deleting and recreating.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
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
	if req.Email != nil {
		var v inputval.Result
		v.Email(*req.Email, "Email")
		if v.HasErrors() {
			webjson.FromErr(w, apperr.Validation(v.First()))
			return
		}
	}

	p, err := h.Store.Update(ctx, id, peoplestore.PersonUpdate{
		Title:        req.Title,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumbers: req.PhoneNumbers,
		Position:     req.Position,
		Department:   req.Department,
	})
	if err != nil {
		webjson.FromErr(w, err)
		return
	}
	webjson.Write(w, http.StatusOK, personDetail{
		Person:       *p,
		Organization: h.resolveOrg(ctx, p.Org),
	})
}

// Delete handles DELETE /people/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := shared.URLID(r)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}
	deleted, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.Log.Error("people: delete failed", zap.Error(err))
		webjson.FromErr(w, err)
		return
	}
	if !deleted {
		webjson.Error(w, http.StatusNotFound, "not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
