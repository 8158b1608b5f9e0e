package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketsim/internal/core/domain"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublishDataPoint(t *testing.T) {
	w := &fakeWriter{}
	p := &Publisher{writer: w}
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	err := p.PublishDataPoint(context.Background(), domain.SimulationDataPoint{
		ID: 1, CampaignID: 42, Impressions: 3400, Clicks: 136, Conversions: 8,
		Cost: decimal.RequireFromString("68.00"), Date: at,
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "42", string(msg.Key))
	assert.Equal(t, at, msg.Time)
	assert.Contains(t, string(msg.Value), `"cost":68.00`)

	var got domain.SimulationDataPoint
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, int64(136), got.Clicks)
	assert.True(t, got.Cost.Equal(decimal.NewFromInt(68)))

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPublishDataPoint_WriteError(t *testing.T) {
	p := &Publisher{writer: &fakeWriter{err: errors.New("leader not available")}}
	err := p.PublishDataPoint(context.Background(), domain.SimulationDataPoint{CampaignID: 1})
	assert.Error(t, err)
}
