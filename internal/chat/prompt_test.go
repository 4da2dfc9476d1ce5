package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSystemPrompt(t *testing.T) {
	sc := NewSessionContext()
	sc.SelectedMall = "Orion Mall"
	sc.SelectedVehicleType = "car"
	sc.ParkingRates = map[string]float64{"car": 50, "bike": 20}

	prompt := BuildSystemPrompt("user-1", "Kiran", testMalls(), sc, "* Slot ID: 5")

	assert.Contains(t, prompt, "* Phoenix Marketcity (ID: 1)")
	assert.Contains(t, prompt, "* Current User ID: user-1")
	assert.Contains(t, prompt, "* User Name: Kiran")
	assert.Contains(t, prompt, "* Selected Mall: Orion Mall")
	assert.Contains(t, prompt, "* Selected Vehicle Type: car")
	assert.Contains(t, prompt, "* Selected License Plate: Not specified")
	assert.Contains(t, prompt, "* Car: ₹50/hour")
	assert.Contains(t, prompt, "* Slot ID: 5")
}

func TestBuildSystemPromptDefaults(t *testing.T) {
	prompt := BuildSystemPrompt("user-1", "", nil, NewSessionContext(), "No slots available currently.")

	assert.Contains(t, prompt, "* User Name: User")
	assert.Contains(t, prompt, "* Selected Mall: Not specified")
	assert.Contains(t, prompt, "No parking rates available for the selected mall.")
}
