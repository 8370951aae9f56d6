package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyString(t *testing.T) {
	assert.Equal(t, "employees:list", ListKey("employees").String())
	assert.Equal(t, "employees:detail:e1", DetailKey("employees", "e1").String())
	assert.Equal(t, "analytics:monthly_revenue", AnalyticsKey("monthly_revenue").String())
}

func TestDependentKeysExpandsRecordID(t *testing.T) {
	keys := DependentKeys("salary.pay", "e1")
	assert.Equal(t, []Key{
		ListKey("employees"),
		DetailKey("employees", "e1"),
		ListKey("payslips"),
		{Entity: "payslips", Sub: "employee", ID: "e1"},
	}, keys)
}

func TestDependentKeysSkipsTemplatesWithoutID(t *testing.T) {
	// Creates do not know the record id up front; only the listing key
	// applies.
	keys := DependentKeys("employee.create", "")
	assert.Equal(t, []Key{ListKey("employees")}, keys)

	keys = DependentKeys("employee.update", "")
	assert.Equal(t, []Key{ListKey("employees")}, keys)
}

func TestDependentKeysUnknownOp(t *testing.T) {
	assert.Nil(t, DependentKeys("employee.frobnicate", "e1"))
}
