package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_InitialState(t *testing.T) {
	s := NewStore()
	assert.Equal(t, StatusIdle, s.Status())
	assert.Empty(t, s.Catalog())
	assert.Nil(t, s.Err())
	assert.False(t, s.EmptyResult())
}

func TestStore_EmptyResult(t *testing.T) {
	s := NewStore()
	seq := s.Begin()
	assert.Equal(t, StatusLoading, s.Status())

	require.True(t, s.Complete(seq, Catalog{}, nil))
	assert.Equal(t, StatusReady, s.Status())
	assert.True(t, s.EmptyResult())
	assert.Nil(t, s.Err())
	assert.Equal(t, Catalog{}, s.Catalog())
}

func TestStore_FailureRetainsCatalogThenRetrySucceeds(t *testing.T) {
	s := NewStore()
	first := sampleCatalog()
	require.True(t, s.Complete(s.Begin(), first, nil))

	failed := s.Begin()
	require.True(t, s.Complete(failed, nil, &LoadError{Message: FetchFailedMessage, Err: errors.New("dial tcp: refused")}))
	assert.Equal(t, StatusFailed, s.Status())
	assert.Equal(t, first, s.Catalog())
	require.NotNil(t, s.Err())
	assert.Equal(t, FetchFailedMessage, s.Err().Message)

	retry := s.Begin()
	assert.Equal(t, StatusLoading, s.Status())
	fresh := Catalog{{Name: "Wrapped Ether", Symbol: "WETH"}}
	require.True(t, s.Complete(retry, fresh, nil))
	assert.Equal(t, StatusReady, s.Status())
	assert.Equal(t, fresh, s.Catalog())
	assert.Nil(t, s.Err())
}

func TestStore_PlainErrorIsWrapped(t *testing.T) {
	s := NewStore()
	require.True(t, s.Complete(s.Begin(), nil, errors.New("eof")))
	require.NotNil(t, s.Err())
	assert.Equal(t, FetchFailedMessage, s.Err().Message)
}

func TestStore_SlowInitialLoadDoesNotClobberRetry(t *testing.T) {
	s := NewStore()
	initial := s.Begin()
	retry := s.Begin()

	retryResult := Catalog{{Symbol: "NEW"}}
	require.True(t, s.Complete(retry, retryResult, nil))
	assert.Equal(t, StatusReady, s.Status())

	assert.False(t, s.Complete(initial, Catalog{{Symbol: "OLD"}}, nil))
	assert.Equal(t, retryResult, s.Catalog())
	assert.Equal(t, StatusReady, s.Status())
}

func TestStore_OlderCompletionFirstStaysLoading(t *testing.T) {
	s := NewStore()
	initial := s.Begin()
	retry := s.Begin()

	require.True(t, s.Complete(initial, Catalog{{Symbol: "OLD"}}, nil))
	assert.Equal(t, StatusLoading, s.Status(), "newer load still outstanding")

	require.True(t, s.Complete(retry, Catalog{{Symbol: "NEW"}}, nil))
	assert.Equal(t, StatusReady, s.Status())
	assert.Equal(t, "NEW", s.Catalog()[0].Symbol)
}

func TestStore_CompletionAfterCloseIsNoop(t *testing.T) {
	s := NewStore()
	seq := s.Begin()
	s.Close()

	assert.False(t, s.Complete(seq, sampleCatalog(), nil))
	assert.Empty(t, s.Catalog())
	assert.True(t, s.Closed())
}

func TestStore_UnknownSequenceIgnored(t *testing.T) {
	s := NewStore()
	assert.False(t, s.Complete(7, sampleCatalog(), nil))
	assert.Equal(t, StatusIdle, s.Status())
}

func TestStore_FilteredFollowsCatalog(t *testing.T) {
	s := NewStore()
	require.True(t, s.Complete(s.Begin(), sampleCatalog(), nil))
	assert.Len(t, s.Filtered("usd"), 1)

	require.True(t, s.Complete(s.Begin(), Catalog{{Name: "USD Tether", Symbol: "USDT"}, {Name: "USD Coin", Symbol: "USDC"}}, nil))
	assert.Len(t, s.Filtered("usd"), 2)
}
