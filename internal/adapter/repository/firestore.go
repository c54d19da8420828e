package repository

import (
	stderrors "errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"avrstore/pkg/errors"
)

const (
	productsCollection   = "products"
	cartsCollection      = "carts"
	ordersCollection     = "orders"
	orderItemsCollection = "orderItems"
	paymentsCollection   = "payments"
	reviewsCollection    = "reviews"
)

// mapError turns a Firestore/gRPC failure into an AppError. Errors that are
// already AppErrors, e.g. returned from a transaction callback, pass through.
func mapError(err error, resource, action string) error {
	if err == nil {
		return nil
	}
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return err
	}

	switch status.Code(err) {
	case codes.NotFound:
		return errors.NotFound(resource, err)
	case codes.FailedPrecondition:
		if strings.Contains(strings.ToLower(status.Convert(err).Message()), "index") {
			return errors.IndexRequired("Query requires a composite index", err)
		}
	case codes.InvalidArgument:
		return errors.BadRequest("Invalid "+strings.ToLower(resource)+" query", err)
	}
	return errors.Internal("Failed to "+action, err)
}
