// This file is part of Gopherscope.
//
// Gopherscope is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherscope is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherscope.  If not, see <https://www.gnu.org/licenses/>.

package waveform

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopherscope/logger"
	"github.com/jetsetilly/gopherscope/signal"
)

// ErrFileExists is returned by ExportFile if the file already exists.
var ErrFileExists = errors.New("file already exists")

// the bit depth of exported files
const exportBitDepth = 16

// Export describes how a signal is written as audio.
type Export struct {
	SampleRate int

	// the number of periods of the signal to write
	Periods int

	// the voltage that maps to full scale. values outside the range are
	// clipped
	FullScale float64
}

// DefaultExport is a reasonable Export value for signals from the function
// generator.
var DefaultExport = Export{
	SampleRate: 48000,
	Periods:    1,
	FullScale:  10,
}

func (e Export) validate() error {
	if e.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate (%d)", e.SampleRate)
	}
	if e.FullScale <= 0 {
		return fmt.Errorf("invalid full scale (%g)", e.FullScale)
	}
	return nil
}

// samples returns the signal as integer samples at the export bit depth
func (e Export) samples(s signal.Periodic) ([]int, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}

	period := s.Period()
	if math.IsInf(period, 0) {
		period = 1
	}

	periods := max(e.Periods, 1)
	n := int(math.Round(period * float64(e.SampleRate)))
	if n < 1 {
		return nil, fmt.Errorf("period is too short for sample rate (%gs at %dHz)", period, e.SampleRate)
	}

	top := float64(int(1)<<(exportBitDepth-1)) - 1

	data := make([]int, 0, n*periods)
	for i := range n * periods {
		v := s.V(float64(i)/float64(e.SampleRate)) / e.FullScale
		v = math.Max(-1, math.Min(1, v))
		data = append(data, int(math.Round(v*top)))
	}

	return data, nil
}

// Write the signal to w as a mono WAV file.
func (e Export) Write(w io.WriteSeeker, s signal.Periodic) error {
	data, err := e.samples(s)
	if err != nil {
		return fmt.Errorf("waveform: %w", err)
	}

	enc := wav.NewEncoder(w, e.SampleRate, exportBitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  e.SampleRate,
		},
		Data:           data,
		SourceBitDepth: exportBitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("waveform: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("waveform: %w", err)
	}

	return nil
}

// WriteFile writes the signal to a new WAV file. The file must not already
// exist.
func (e Export) WriteFile(filename string, s signal.Periodic) (rerr error) {
	if err := e.validate(); err != nil {
		return fmt.Errorf("waveform: %w", err)
	}

	f, err := os.OpenFile(filename, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("waveform: %w: %s", ErrFileExists, filename)
		}
		return fmt.Errorf("waveform: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("waveform: %w", err)
		}
	}()

	logger.Logf(logger.Allow, "waveform", "writing %v to %s", s, filename)

	return e.Write(f, s)
}
