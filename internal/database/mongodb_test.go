package database

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/demoapps/go-services/internal/apperr"
)

func TestStoreErrorMapsDuplicateKey(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}
	err := StoreError(dup, "word already exists")
	require.Equal(t, http.StatusConflict, apperr.Status(err))
	require.Equal(t, "word already exists", apperr.Message(err))
}

func TestStoreErrorDefaultsToStore(t *testing.T) {
	err := StoreError(errors.New("socket closed"), "")
	require.Equal(t, http.StatusInternalServerError, apperr.Status(err))
	require.True(t, errors.Is(err, apperr.ErrStore))
	require.Nil(t, StoreError(nil, ""))
}

func TestProbeWithoutClient(t *testing.T) {
	require.Error(t, Probe(context.Background(), nil, time.Second))
}

func TestConnectWithRetryHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ConnectWithRetry(ctx, "mongodb://127.0.0.1:1", 50*time.Millisecond, 3, time.Second)
	require.Error(t, err)
}
