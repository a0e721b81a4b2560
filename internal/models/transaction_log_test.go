package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendStatusKeepsHistory(t *testing.T) {
	entry := TransactionLog{Type: TransactionTypePayment, Amount: 100}

	first := StatusChange{Status: TransactionStatusPending, ChangedBy: "system", ChangedAt: time.Now()}
	require.NoError(t, entry.AppendStatus(first))

	second := StatusChange{Status: TransactionStatusSucceeded, ChangedBy: "admin-1", ChangedAt: time.Now()}
	require.NoError(t, entry.AppendStatus(second))

	history, err := entry.History()
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, TransactionStatusPending, history[0].Status, "earlier entries survive later appends")
	assert.Equal(t, "system", history[0].ChangedBy)
	assert.Equal(t, TransactionStatusSucceeded, history[1].Status)

	assert.Equal(t, TransactionStatusSucceeded, entry.Status, "the column mirrors the latest change")
}

func TestAppendAdminActionAccumulates(t *testing.T) {
	entry := TransactionLog{Type: TransactionTypeRefund, Amount: 40}

	require.NoError(t, entry.AppendAdminAction(AdminAction{Action: "flag", PerformedBy: "admin-1", PerformedAt: time.Now()}))
	require.NoError(t, entry.AppendAdminAction(AdminAction{Action: "clear", PerformedBy: "admin-2", PerformedAt: time.Now()}))

	actions, err := entry.Actions()
	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, "flag", actions[0].Action)
	assert.Equal(t, "clear", actions[1].Action)
}

func TestHistoryOnFreshEntryIsEmpty(t *testing.T) {
	var entry TransactionLog

	history, err := entry.History()
	require.NoError(t, err)
	assert.Empty(t, history)

	actions, err := entry.Actions()
	require.NoError(t, err)
	assert.Empty(t, actions)
}
