package scenes

import (
	"strings"
	"testing"

	"github.com/decker502/skydiver/pkg/config"
)

func TestInstructionsKeepsEveryWord(t *testing.T) {
	deps := newTestDeps(t)
	scene := NewInstructionsScene(deps)

	if len(scene.Lines()) < len(config.InstructionsText) {
		t.Fatalf("got %d lines, want at least %d", len(scene.Lines()), len(config.InstructionsText))
	}

	got := strings.Fields(strings.Join(scene.Lines(), " "))
	want := strings.Fields(strings.Join(config.InstructionsText, " "))
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("wrapped text lost words:\ngot  %q\nwant %q", got, want)
	}
}

func TestInstructionsBackToMenu(t *testing.T) {
	deps := newTestDeps(t)
	scene := NewInstructionsScene(deps)
	deps.SceneManager.SwitchTo(scene)

	scene.back()

	if _, ok := deps.SceneManager.GetCurrentScene().(*MainMenuScene); !ok {
		t.Errorf("current scene = %T, want *MainMenuScene", deps.SceneManager.GetCurrentScene())
	}
}
