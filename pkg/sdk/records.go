package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListFryRecords returns one page of fry records matching the given filters.
// Non-administrators only ever see their own records; the server enforces
// that regardless of the Agent filter.
func (c *Client) ListFryRecords(ctx context.Context, input ListFryRecordsInput) (*FryRecordPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(pageOrDefault(input.Page)))
	query.Set("pageSize", strconv.Itoa(pageSizeOrDefault(input.PageSize)))
	if input.Date != "" {
		query.Set("date", input.Date)
	}
	if input.Phone != "" {
		query.Set("phone", input.Phone)
	}
	if input.Agent != "" {
		query.Set("agent", input.Agent)
	}

	var resp struct {
		Success bool        `json:"success"`
		Data    []FryRecord `json:"data"`
		Total   int         `json:"total"`
		Message string      `json:"message"`
	}
	if err := c.do(ctx, http.MethodGet, "/dashboard/fry-records", query, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &APIError{Message: resp.Message}
	}
	return &FryRecordPage{Records: resp.Data, Total: resp.Total}, nil
}

type updateRemarkRequest struct {
	Remark string `json:"remark"`
}

// UpdateRemark replaces the remark of one fry record.
func (c *Client) UpdateRemark(ctx context.Context, id int64, remark string) error {
	path := fmt.Sprintf("/dashboard/fry-records/%d/remark", id)
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPut, path, nil, updateRemarkRequest{Remark: remark}, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return &APIError{Message: resp.Message}
	}
	return nil
}

// DeleteFryRecord removes one fry record.
func (c *Client) DeleteFryRecord(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/dashboard/fry-records/%d", id)
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return &APIError{Message: resp.Message}
	}
	return nil
}

func pageOrDefault(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func pageSizeOrDefault(size int) int {
	if size < 1 {
		return 20
	}
	return size
}
