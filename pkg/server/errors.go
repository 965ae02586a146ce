package server

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func missingRequestFieldError(fieldName string) error {
	return status.Errorf(codes.InvalidArgument,
		"Request is missing required field `%s`.", fieldName)
}

func emptyRequestFieldError(fieldName string) error {
	return status.Errorf(codes.InvalidArgument,
		"Request field `%s` must not be blank.", fieldName)
}

func negativeRequestFieldError(fieldName string) error {
	return status.Errorf(codes.InvalidArgument,
		"Request field `%s` must not be negative.", fieldName)
}

const (
	defaultPageSize = 50
	maxPageSize     = 1000
)

// boundedPageSize normalizes a requested page size: zero means the default,
// oversized requests are clamped, and negative values are rejected.
func boundedPageSize(pageSize int32) (int, error) {
	if pageSize < 0 {
		return 0, negativeRequestFieldError("page_size")
	}
	if pageSize == 0 {
		return defaultPageSize, nil
	}
	if pageSize > maxPageSize {
		return maxPageSize, nil
	}
	return int(pageSize), nil
}
