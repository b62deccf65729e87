package speech

import (
	"context"
	"fmt"
	"os/exec"
)

// localSynthesizers are probed in order. Each entry names the binary
// and the arguments that select a Korean voice.
var localSynthesizers = []struct {
	bin  string
	args []string
}{
	{"say", []string{"-v", "Yuna"}},
	{"espeak-ng", []string{"-v", "ko"}},
	{"espeak", []string{"-v", "ko"}},
}

// LocalSpeaker shells out to an on-device speech synthesizer. The
// synthesizer is located lazily so an unavailable binary only surfaces
// when speech is actually requested.
type LocalSpeaker struct{}

// NewLocalSpeaker creates a speaker backed by a local synthesizer.
func NewLocalSpeaker() *LocalSpeaker {
	return &LocalSpeaker{}
}

func (s *LocalSpeaker) Speak(ctx context.Context, text string) error {
	for _, synth := range localSynthesizers {
		path, err := exec.LookPath(synth.bin)
		if err != nil {
			continue
		}
		args := append(append([]string{}, synth.args...), text)
		cmd := exec.CommandContext(ctx, path, args...)
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%s: %w", synth.bin, err)
		}
		return nil
	}
	return fmt.Errorf("no local speech synthesizer found")
}
