package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Auth errors
	CodeAuthEmailInvalid        Code = "AUTH_EMAIL_INVALID"
	CodeAuthEmailTaken          Code = "AUTH_EMAIL_TAKEN"
	CodeAuthPasswordTooShort    Code = "AUTH_PASSWORD_TOO_SHORT"
	CodeAuthInvalidCredentials  Code = "AUTH_INVALID_CREDENTIALS"
	CodeAuthSessionInvalid      Code = "AUTH_SESSION_INVALID"
	CodeAuthSessionTokenInvalid Code = "AUTH_SESSION_TOKEN_INVALID"

	// Profile errors
	CodeProfileNameEmpty   Code = "PROFILE_NAME_EMPTY"
	CodeProfileInvalidRole Code = "PROFILE_INVALID_ROLE"

	// Post errors
	CodePostTitleEmpty   Code = "POST_TITLE_EMPTY"
	CodePostContentEmpty Code = "POST_CONTENT_EMPTY"
	CodePostEmptyAuthor  Code = "POST_EMPTY_AUTHOR"

	// Comment errors
	CodeCommentContentEmpty Code = "COMMENT_CONTENT_EMPTY"
	CodeCommentEmptyPost    Code = "COMMENT_EMPTY_POST"
	CodeCommentEmptyAuthor  Code = "COMMENT_EMPTY_AUTHOR"

	// Authorization errors
	CodeForbidden Code = "FORBIDDEN"

	// Storage errors
	CodeNotFound         Code = "NOT_FOUND"
	CodeStoreUnavailable Code = "STORE_UNAVAILABLE"
)

// HTTPStatus maps domain codes to HTTP response statuses.
func (c Code) HTTPStatus() int {
	switch c {
	// Bad request - validation failures, bad input
	case CodeAuthEmailInvalid,
		CodeAuthPasswordTooShort,
		CodeProfileNameEmpty,
		CodeProfileInvalidRole,
		CodePostTitleEmpty,
		CodePostContentEmpty,
		CodePostEmptyAuthor,
		CodeCommentContentEmpty,
		CodeCommentEmptyPost,
		CodeCommentEmptyAuthor:
		return http.StatusBadRequest

	// Unauthorized - no usable authenticated identity
	case CodeAuthInvalidCredentials,
		CodeAuthSessionInvalid,
		CodeAuthSessionTokenInvalid:
		return http.StatusUnauthorized

	case CodeForbidden:
		return http.StatusForbidden

	case CodeNotFound:
		return http.StatusNotFound

	case CodeAuthEmailTaken:
		return http.StatusConflict

	case CodeStoreUnavailable:
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}
