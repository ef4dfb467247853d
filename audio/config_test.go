package audio

import (
	"testing"

	"github.com/lixenwraith/snake/constants"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SNAKE_AUDIO_ENABLED", "")
	t.Setenv("SNAKE_MASTER_VOLUME", "")
	t.Setenv("SNAKE_SAMPLE_RATE", "")

	cfg := LoadConfig()
	if !cfg.Enabled {
		t.Error("Expected audio enabled by default")
	}
	if cfg.MasterVolume != constants.AudioMasterVolume {
		t.Errorf("Expected volume %.2f, got %.2f", constants.AudioMasterVolume, cfg.MasterVolume)
	}
	if cfg.SampleRate != constants.AudioSampleRate {
		t.Errorf("Expected sample rate %d, got %d", constants.AudioSampleRate, cfg.SampleRate)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SNAKE_AUDIO_ENABLED", "false")
	t.Setenv("SNAKE_MASTER_VOLUME", "80")
	t.Setenv("SNAKE_SAMPLE_RATE", "48000")

	cfg := LoadConfig()
	if cfg.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.MasterVolume != 0.8 {
		t.Errorf("Expected volume 0.8, got %.2f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.SampleRate)
	}
}

func TestLoadConfig_ClampsAndIgnoresMalformed(t *testing.T) {
	t.Setenv("SNAKE_AUDIO_ENABLED", "maybe")
	t.Setenv("SNAKE_MASTER_VOLUME", "250")
	t.Setenv("SNAKE_SAMPLE_RATE", "-1")

	cfg := LoadConfig()
	if !cfg.Enabled {
		t.Error("Malformed bool should keep default")
	}
	if cfg.MasterVolume != 1.0 {
		t.Errorf("Expected volume clamped to 1.0, got %.2f", cfg.MasterVolume)
	}
	if cfg.SampleRate != constants.AudioSampleRate {
		t.Errorf("Negative sample rate should be ignored, got %d", cfg.SampleRate)
	}

	t.Setenv("SNAKE_MASTER_VOLUME", "-5")
	if cfg := LoadConfig(); cfg.MasterVolume != 0 {
		t.Errorf("Expected volume clamped to 0, got %.2f", cfg.MasterVolume)
	}
}
