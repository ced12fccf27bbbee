package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type fakeExchanger struct {
	gotCode string
	err     error
}

func (f *fakeExchanger) AuthCodeURL(state string, _ ...oauth2.AuthCodeOption) string {
	return "https://accounts.example/auth?state=" + state
}

func (f *fakeExchanger) Exchange(_ context.Context, code string, _ ...oauth2.AuthCodeOption) (*oauth2.Token, error) {
	f.gotCode = code
	if f.err != nil {
		return nil, f.err
	}
	return &oauth2.Token{AccessToken: "access-" + code}, nil
}

func TestExchangeToken(t *testing.T) {
	ex := &fakeExchanger{}
	var out bytes.Buffer

	tok, err := exchangeToken(context.Background(), ex, strings.NewReader("abc123\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "abc123", ex.gotCode)
	assert.Equal(t, "access-abc123", tok.AccessToken)
	assert.Contains(t, out.String(), "https://accounts.example/auth?state=state-token")
}

func TestExchangeToken_Errors(t *testing.T) {
	_, err := exchangeToken(context.Background(), &fakeExchanger{}, strings.NewReader(""), &bytes.Buffer{})
	assert.Error(t, err, "no code on stdin")

	_, err = exchangeToken(context.Background(), &fakeExchanger{err: errors.New("invalid_grant")},
		strings.NewReader("abc"), &bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid_grant")
}

func TestGCalAuthCmd_MissingCredentials(t *testing.T) {
	_, err := execute(t, "", "gcal-auth", t.TempDir()+"/missing.json")
	assert.ErrorContains(t, err, "read credentials")
}
