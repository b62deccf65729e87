package speech

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// audioPlayers are probed in order for audio file playback.
var audioPlayers = []string{"afplay", "paplay", "aplay", "ffplay", "mpv"}

// playerArgs returns extra flags some players need to behave as a
// one-shot, silent playback command.
func playerArgs(player, path string) []string {
	switch player {
	case "ffplay":
		return []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}
	case "mpv":
		return []string{"--no-video", "--really-quiet", path}
	default:
		return []string{path}
	}
}

// findPlayer locates the first available audio player on PATH.
func findPlayer() (string, error) {
	for _, p := range audioPlayers {
		if path, err := exec.LookPath(p); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no audio player found (tried %v)", audioPlayers)
}

// playFile writes audio to a temp file and plays it with a local player.
func playFile(ctx context.Context, audio []byte, ext string) error {
	player, err := findPlayer()
	if err != nil {
		return err
	}

	f, err := os.CreateTemp("", "hana-tts-*"+ext)
	if err != nil {
		return fmt.Errorf("create temp audio file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(audio); err != nil {
		f.Close()
		return fmt.Errorf("write audio: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, player, playerArgs(player, path)...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("play audio: %w", err)
	}
	return nil
}
