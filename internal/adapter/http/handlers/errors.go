package handlers

import (
	"errors"
	"net/http"

	"cartao_fidelidade/internal/adapter/http/dto/request"
	"cartao_fidelidade/internal/usecase"
	"cartao_fidelidade/pkg"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// mapDomainError translates use case sentinels into stable HTTP codes. The
// subscription gate gets 402 on purpose: the client application routes that
// status to the payment prompt instead of a generic error screen.
func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstablishmentID),
		errors.Is(err, usecase.ErrInvalidCardID),
		errors.Is(err, usecase.ErrInvalidClientName),
		errors.Is(err, usecase.ErrInvalidPhone),
		errors.Is(err, usecase.ErrInvalidInitialPoints),
		errors.Is(err, usecase.ErrInvalidPoints),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidPaymentDate),
		errors.Is(err, usecase.ErrInvalidEstablishmentName),
		errors.Is(err, usecase.ErrInvalidEmail),
		errors.Is(err, usecase.ErrInvalidThreshold),
		errors.Is(err, usecase.ErrInvalidTemplate),
		errors.Is(err, usecase.ErrInvalidLogoKey),
		errors.Is(err, usecase.ErrSearchParamsMissing),
		errors.Is(err, request.ErrInvalidPaymentDateFormat):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubscriptionExpired):
		return pkg.NewDomainErrorSimple("SUBSCRIPTION_EXPIRED", "Subscription expired, payment required", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrCardForbidden):
		return pkg.NewDomainErrorSimple("CARD_FORBIDDEN", "Card belongs to another establishment", http.StatusForbidden)
	case errors.Is(err, usecase.ErrEstablishmentNotFound):
		return pkg.NewDomainErrorSimple("ESTABLISHMENT_NOT_FOUND", "Establishment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCardNotFound):
		return pkg.NewDomainErrorSimple("CARD_NOT_FOUND", "Card not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found in this establishment", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoCardsFound):
		return pkg.NewDomainErrorSimple("NO_CARDS_FOUND", "No cards matched the search", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLogoNotFound):
		return pkg.NewDomainErrorSimple("LOGO_NOT_FOUND", "Logo object not found in storage", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInsufficientPoints):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_POINTS", "Not enough points for a voucher", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSlugAlreadyExists):
		return pkg.NewDomainErrorSimple("SLUG_ALREADY_EXISTS", "An establishment with this name already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrCardCodeConflict):
		return pkg.NewDomainErrorSimple("CARD_CODE_CONFLICT", "Could not generate a unique card code", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
