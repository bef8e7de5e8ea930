package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Date
		wantErr bool
	}{
		{name: "date only", in: "2024-01-05", want: NewDate(2024, time.January, 5)},
		{name: "rfc3339 truncated", in: "2024-01-05T23:10:00Z", want: NewDate(2024, time.January, 5)},
		{name: "garbage", in: "05/01/2024", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time))
		})
	}
}

func TestDate_JSON(t *testing.T) {
	var req struct {
		Date Date `json:"date"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-01-05"}`), &req))
	assert.Equal(t, "2024-01-05", req.Date.String())

	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-01-05"}`, string(b))

	require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &req))
	assert.True(t, req.Date.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`{"date":""}`), &req))
	assert.True(t, req.Date.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"date":"yesterday"}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"date":20240105}`), &req))
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-09", d.String())

	require.NoError(t, d.Scan("2024-03-10"))
	assert.Equal(t, "2024-03-10", d.String())

	require.NoError(t, d.Scan([]byte("2024-03-11")))
	assert.Equal(t, "2024-03-11", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDate_Value(t *testing.T) {
	v, err := NewDate(2024, time.January, 5).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestAddExpenseRequest_AmountDecoding(t *testing.T) {
	var req AddExpenseRequest

	require.NoError(t, json.Unmarshal([]byte(`{"amount":12.5}`), &req))
	require.True(t, req.Amount.Valid)
	assert.True(t, req.Amount.Decimal.Equal(decimal.RequireFromString("12.50")))

	req = AddExpenseRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"12.50"}`), &req))
	assert.True(t, req.Amount.Valid)

	req = AddExpenseRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"category":"food"}`), &req))
	assert.False(t, req.Amount.Valid)
}

func TestNewExpenseResponses(t *testing.T) {
	assert.NotNil(t, NewExpenseResponses(nil))

	got := NewExpenseResponses([]Expense{{ID: 1, UserID: 2, Amount: decimal.RequireFromString("12.5")}})
	require.Len(t, got, 1)
	assert.Equal(t, "12.50", got[0].Amount)
}

func TestNewAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build version: N/A")
}
