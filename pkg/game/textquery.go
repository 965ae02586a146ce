package game

import (
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// QueryTexts pages through texts matching the filter as a case-sensitive
// substring. The page token is a decimal offset into the filtered sequence;
// an empty next token means the results are exhausted.
func QueryTexts(texts []string, filter string, pageSize int, pageToken string) (page []string, nextPageToken string, err error) {
	offset := 0
	if pageToken != "" {
		offset, err = strconv.Atoi(pageToken)
		if err != nil || offset < 0 {
			return nil, "", status.Error(codes.InvalidArgument, "Invalid page token.")
		}
	}

	matched := 0
	for _, text := range texts {
		if filter != "" && !strings.Contains(text, filter) {
			continue
		}
		matched++
		if matched <= offset {
			continue
		}
		if len(page) == pageSize {
			// One extra match past the page means another page exists.
			return page, strconv.Itoa(offset + pageSize), nil
		}
		page = append(page, text)
	}
	return page, "", nil
}
