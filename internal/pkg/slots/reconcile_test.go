package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldRecordsBlankNeverOverwrites(t *testing.T) {
	t.Run("blank after non-blank keeps the name", func(t *testing.T) {
		store := FoldRecords([]Record{
			{Day: "2025-06-10", Time: "09:00", Name: "Ivan"},
			{Day: "2025-06-10", Time: "09:00", Name: ""},
		})
		assert.Equal(t, "Ivan", store.Get("2025-06-10", "09:00"))
	})

	t.Run("reconciled value is the last non-blank in order", func(t *testing.T) {
		store := FoldRecords([]Record{
			{Day: "2025-06-10", Time: "09:00", Name: ""},
			{Day: "2025-06-10", Time: "09:00", Name: "Ivan"},
			{Day: "2025-06-10", Time: "09:00", Name: "Petr"},
			{Day: "2025-06-10", Time: "09:00", Name: "   "},
		})
		assert.Equal(t, "Petr", store.Get("2025-06-10", "09:00"))
	})

	t.Run("later non-blank still overwrites earlier non-blank", func(t *testing.T) {
		store := FoldRecords([]Record{
			{Day: "2025-06-10", Time: "09:00", Name: "Ivan"},
			{Day: "2025-06-10", Time: "09:00", Name: "Petr"},
		})
		assert.Equal(t, "Petr", store.Get("2025-06-10", "09:00"))
	})
}

func TestFoldRecordsOnlyBlanksYieldNothing(t *testing.T) {
	store := FoldRecords([]Record{
		{Day: "2025-06-10", Time: "09:00", Name: ""},
		{Day: "2025-06-10", Time: "09:00", Name: "  "},
	})

	assert.Empty(t, store, "blank values never materialize")
}

func TestFoldRecordsTrimsNames(t *testing.T) {
	store := FoldRecords([]Record{
		{Day: "2025-06-10", Time: "09:00", Name: "  Ivan "},
	})

	assert.Equal(t, "Ivan", store.Get("2025-06-10", "09:00"))
}

func TestFoldRecordsIndependentKeys(t *testing.T) {
	store := FoldRecords([]Record{
		{Day: "2025-06-10", Time: "09:00", Name: "Ivan"},
		{Day: "2025-06-10", Time: "09:30", Name: "Maria"},
		{Day: "2025-06-11", Time: "09:00", Name: "Petr"},
	})

	assert.Equal(t, Store{
		"2025-06-10": {"09:00": "Ivan", "09:30": "Maria"},
		"2025-06-11": {"09:00": "Petr"},
	}, store)
}
