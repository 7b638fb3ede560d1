package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("preparing")
	assert.NoError(t, err)
	assert.Equal(t, OrderStatusPreparing, status)

	status, err = ParseOrderStatus("  COMPLETED ")
	assert.NoError(t, err)
	assert.Equal(t, OrderStatusCompleted, status)

	_, err = ParseOrderStatus("REFUNDED")
	assert.Error(t, err)

	_, err = ParseOrderStatus("")
	assert.Error(t, err)
}

func TestParseOrderType(t *testing.T) {
	typ, err := ParseOrderType("dine_in")
	assert.NoError(t, err)
	assert.Equal(t, OrderTypeDineIn, typ)

	typ, err = ParseOrderType("TAKEAWAY")
	assert.NoError(t, err)
	assert.Equal(t, OrderTypeTakeaway, typ)

	_, err = ParseOrderType("DELIVERY")
	assert.Error(t, err)
}

func TestOrderStatusIsTerminal(t *testing.T) {
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusPreparing.IsTerminal())
	assert.False(t, OrderStatusServed.IsTerminal())
}
