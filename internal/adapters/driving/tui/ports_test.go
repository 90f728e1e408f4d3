package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPorts_Validate(t *testing.T) {
	var nilPorts *Ports
	assert.ErrorIs(t, nilPorts.Validate(), ErrMissingWorkdayService)
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingWorkdayService)
	assert.NoError(t, (&Ports{Workday: newMockService()}).Validate())
}
