package timer

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/leoarenas/pomodorotrack/config"
)

// prepSoundStream returns an audio stream for the specified sound. Bare
// names resolve to OGG files in the application sounds directory; anything
// with an extension is opened as a path.
func prepSoundStream(sound string) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	path := sound

	if filepath.Ext(sound) == "" {
		path = filepath.Join(config.SoundsDirPath(), sound+".ogg")
	} else if !filepath.IsAbs(sound) {
		path = filepath.Join(config.SoundsDirPath(), sound)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, format, err
	}

	switch filepath.Ext(path) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		_ = f.Close()
		return nil, format, errInvalidSoundFormat
	}

	if err != nil {
		return nil, format, err
	}

	return stream, format, nil
}

// playSound plays the named sound once at the given volume and blocks until
// playback finishes. Failures are logged, never surfaced.
func playSound(sound string, volume float64) {
	stream, format, err := prepSoundStream(sound)
	if err != nil {
		slog.Warn("unable to play sound", "sound", sound, "error", err)
		return
	}

	defer stream.Close()

	bufferSize := 10

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
	)
	if err != nil {
		slog.Warn("unable to initialise speaker", "error", err)
		return
	}

	// map the 0..1 volume setting onto beep's logarithmic scale
	vol := &effects.Volume{
		Streamer: stream,
		Base:     2,
		Volume:   (volume - 1) * 5,
		Silent:   volume == 0,
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(vol, beep.Callback(func() {
		close(done)
	})))

	<-done

	speaker.Clear()
	speaker.Close()
}
