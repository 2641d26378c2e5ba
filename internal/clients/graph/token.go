package graph

import (
	"context"
	"errors"
	"net/http"

	"villanova-server/internal/observability"
	"villanova-server/internal/ratelimit"
)

var ErrPageNotManaged = errors.New("page is not managed by this token")

// TokenValidation is the outcome of validating a page token
type TokenValidation struct {
	Valid     bool   `json:"valid"`
	Name      string `json:"name,omitempty"`
	PageToken string `json:"-"`
	Error     string `json:"error,omitempty"`
}

type identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type pageAccount struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AccessToken string `json:"access_token"`
}

type accountsResponse struct {
	Data []pageAccount `json:"data"`
}

// ValidateToken checks that token can act as pageID. It never returns an error.
// A token that is not the page's own is treated as a user token and exchanged
// for the page token through the account listing.
func (c *Client) ValidateToken(ctx context.Context, pageID, token string) TokenValidation {
	ctx = observability.WithFields(ctx, observability.Field{Key: "page_id", Value: pageID})

	me, err := c.me(ctx, token)
	if err == nil && me.ID == pageID {
		return TokenValidation{Valid: true, Name: me.Name, PageToken: token}
	}
	if err != nil {
		c.logger.WarnWithError(ctx, "direct token validation failed, trying page token exchange", err)
	}

	page, exchangeErr := c.findManagedPage(ctx, token, pageID)
	if exchangeErr != nil {
		c.logger.WarnWithError(ctx, "page token exchange failed", exchangeErr)
		msg := exchangeErr.Error()
		if err != nil {
			msg = err.Error()
		}
		return TokenValidation{Valid: false, Error: msg}
	}
	return TokenValidation{Valid: true, Name: page.Name, PageToken: page.AccessToken}
}

// GetPageAccessToken resolves the page-scoped token for targetPageID.
// A token whose own identity is already the page is returned unchanged.
func (c *Client) GetPageAccessToken(ctx context.Context, userToken, targetPageID string) (string, error) {
	me, err := c.me(ctx, userToken)
	if err == nil && me.ID == targetPageID {
		return userToken, nil
	}

	page, err := c.findManagedPage(ctx, userToken, targetPageID)
	if err != nil {
		return "", err
	}
	return page.AccessToken, nil
}

func (c *Client) me(ctx context.Context, token string) (identity, error) {
	var me identity
	err := c.call(ctx, ratelimit.PriorityNormal, http.MethodGet, "me", withToken(token, "fields", "id,name"), &me)
	return me, err
}

func (c *Client) findManagedPage(ctx context.Context, userToken, pageID string) (pageAccount, error) {
	var accounts accountsResponse
	err := c.call(ctx, ratelimit.PriorityNormal, http.MethodGet, "me/accounts",
		withToken(userToken, "fields", "id,name,access_token"), &accounts)
	if err != nil {
		return pageAccount{}, err
	}
	for _, account := range accounts.Data {
		if account.ID == pageID && account.AccessToken != "" {
			return account, nil
		}
	}
	return pageAccount{}, ErrPageNotManaged
}
