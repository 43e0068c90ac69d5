package tui

// Decorative animation frames. The frame counter advances once per
// input event, so the decorations only move while the user is active.

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var pulseFrames = []string{"●", "◉", "○", "◉"}

var waveFrames = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "▆", "▅", "▄", "▃", "▂"}

func spinnerFrame(n int) string { return spinnerFrames[n%len(spinnerFrames)] }

func pulseFrame(n int) string { return pulseFrames[n%len(pulseFrames)] }

func waveFrame(n int) string { return waveFrames[n%len(waveFrames)] }
