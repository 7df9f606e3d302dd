package pricing

import (
	"net/http"

	"github.com/jwpark-dev/moru-commerce/api/responses"
	"github.com/jwpark-dev/moru-commerce/api/validators"
	"github.com/jwpark-dev/moru-commerce/internal/catalog"
	pkgerrors "github.com/jwpark-dev/moru-commerce/pkg/errors"
	"github.com/jwpark-dev/moru-commerce/pkg/logger"
)

// ValidateProducts checks the requested lines against the live catalog and
// returns the valid/invalid partition.
func ValidateProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pricing service unavailable"))
			return
		}

		var payload ValidateProductsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ValidateProducts(r.Context(), toItems(payload.Items))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newValidateResponse(result))
	}
}

// QuoteProducts prices the requested lines and returns the seller-grouped
// quote with product detail.
func QuoteProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pricing service unavailable"))
			return
		}

		var payload QuoteProductsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.QuoteProducts(r.Context(), toItems(payload.Items))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newQuoteResponse(result))
	}
}
