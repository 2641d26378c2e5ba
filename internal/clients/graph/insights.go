package graph

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"villanova-server/internal/observability"
	"villanova-server/internal/ratelimit"
)

const (
	pageReachMetric      = "page_impressions_unique"
	pageEngagementMetric = "page_post_engagements"
	postReachMetric      = "post_impressions_unique"
	postEngagementMetric = "post_engaged_users"
)

// PostMetrics is a snapshot of one post's performance
type PostMetrics struct {
	Reach      int
	Engagement int
	Likes      int
	Comments   int
	Shares     int
}

// PageInsights is a snapshot of page level reach and engagement
type PageInsights struct {
	Reach      int
	Engagement int
}

type insightValue struct {
	Value json.RawMessage `json:"value"`
}

type insight struct {
	Name   string         `json:"name"`
	Values []insightValue `json:"values"`
}

// latest returns the most recent numeric value of the metric
func (i insight) latest() int {
	if len(i.Values) == 0 {
		return 0
	}
	var n float64
	if err := json.Unmarshal(i.Values[len(i.Values)-1].Value, &n); err != nil {
		return 0
	}
	return int(n)
}

type postCounts struct {
	Shares struct {
		Count int `json:"count"`
	} `json:"shares"`
	Reactions struct {
		Summary struct {
			TotalCount int `json:"total_count"`
		} `json:"summary"`
	} `json:"reactions"`
	Comments struct {
		Summary struct {
			TotalCount int `json:"total_count"`
		} `json:"summary"`
	} `json:"comments"`
}

// GetPostMetrics fetches reach, engagement and interaction counts for a post.
// Each part degrades to zero independently.
func (c *Client) GetPostMetrics(ctx context.Context, postID, token string) PostMetrics {
	ctx = observability.WithFields(ctx, observability.Field{Key: "external_post_id", Value: postID})
	var metrics PostMetrics

	var insights listResponse[insight]
	err := c.call(ctx, ratelimit.PriorityLow, http.MethodGet, postID+"/insights",
		withToken(token, "metric", postReachMetric+","+postEngagementMetric), &insights)
	if err != nil {
		c.logger.WarnWithError(ctx, "failed to get post insights", err)
	} else {
		for _, in := range insights.Data {
			switch in.Name {
			case postReachMetric:
				metrics.Reach = in.latest()
			case postEngagementMetric:
				metrics.Engagement = in.latest()
			}
		}
	}

	var counts postCounts
	err = c.call(ctx, ratelimit.PriorityLow, http.MethodGet, postID,
		withToken(token, "fields", "shares,reactions.summary(total_count).limit(0),comments.summary(total_count).limit(0)"), &counts)
	if err != nil {
		c.logger.WarnWithError(ctx, "failed to get post counts", err)
	} else {
		metrics.Likes = counts.Reactions.Summary.TotalCount
		metrics.Comments = counts.Comments.Summary.TotalCount
		metrics.Shares = counts.Shares.Count
	}

	return metrics
}

// GetInsights fetches page reach and engagement for the last day. When the
// upstream rejects the metric set as invalid it retries once with reach only,
// reporting zero engagement. Any other failure yields zeros.
func (c *Client) GetInsights(ctx context.Context, pageID, token string) PageInsights {
	ctx = observability.WithFields(ctx, observability.Field{Key: "page_id", Value: pageID})

	result, err := c.pageInsights(ctx, pageID, token, pageReachMetric, pageEngagementMetric)
	if err == nil {
		return result
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Code != invalidMetricCode {
		c.logger.WarnWithError(ctx, "failed to get page insights", err)
		return PageInsights{}
	}

	c.logger.WarnWithError(ctx, "page insights metric set rejected, retrying with reduced set", err)
	result, err = c.pageInsights(ctx, pageID, token, pageReachMetric)
	if err != nil {
		c.logger.WarnWithError(ctx, "failed to get reduced page insights", err)
		return PageInsights{}
	}
	result.Engagement = 0
	return result
}

func (c *Client) pageInsights(ctx context.Context, pageID, token string, metrics ...string) (PageInsights, error) {
	var resp listResponse[insight]
	err := c.call(ctx, ratelimit.PriorityLow, http.MethodGet, pageID+"/insights",
		withToken(token, "metric", strings.Join(metrics, ","), "period", "day"), &resp)
	if err != nil {
		return PageInsights{}, err
	}

	var result PageInsights
	for _, in := range resp.Data {
		switch in.Name {
		case pageReachMetric:
			result.Reach = in.latest()
		case pageEngagementMetric:
			result.Engagement = in.latest()
		}
	}
	return result, nil
}
