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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopherscope/logger"
	"github.com/jetsetilly/gopherscope/signal"
)

// MaxSamples is the maximum number of samples in a loaded waveform. Longer
// files are reduced to this many samples.
const MaxSamples = 4096

// Sentinel errors returned by the load functions.
var (
	ErrFormat = errors.New("unsupported waveform format")
	ErrEmpty  = errors.New("waveform contains no samples")
)

// Info describes the file a waveform was loaded from.
type Info struct {
	Format     string
	SampleRate float64

	// the number of samples in the file, before any reduction
	Samples int

	// length of the file in seconds
	Duration float64
}

func (i Info) String() string {
	return fmt.Sprintf("%s %d samples at %.0fHz (%.3fs)", i.Format, i.Samples, i.SampleRate, i.Duration)
}

// pcm is mono data in the range -1 to 1
type pcm struct {
	info Info
	data []float64
}

// LoadFile loads a waveform from the named file. The format is decided by the
// file extension.
func LoadFile(filename string) (*signal.Table, Info, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, Info{}, fmt.Errorf("waveform: %w", err)
	}
	defer f.Close()
	return Load(f, filepath.Ext(filename))
}

// Load a waveform from the reader. The format is one of "wav" or "mp3" and
// may have a leading dot.
//
// The returned table has a period equal to the duration of the file. The
// samples are interpolated with a cubic Hermite curve.
func Load(r io.ReadSeeker, format string) (*signal.Table, Info, error) {
	var p pcm
	var err error

	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "wav":
		p, err = decodeWAV(r)
	case "mp3":
		p, err = decodeMP3(r)
	default:
		return nil, Info{}, fmt.Errorf("waveform: %w: %s", ErrFormat, format)
	}
	if err != nil {
		return nil, Info{}, fmt.Errorf("waveform: %w", err)
	}

	if len(p.data) == 0 {
		return nil, p.info, fmt.Errorf("waveform: %w", ErrEmpty)
	}

	logger.Logf(logger.Allow, "waveform", "loaded %v", p.info)

	tbl, err := signal.NewCubicTable(p.info.Duration, reduce(p.data, MaxSamples))
	if err != nil {
		return nil, p.info, fmt.Errorf("waveform: %w", err)
	}
	return tbl, p.info, nil
}

func decodeWAV(r io.ReadSeeker) (pcm, error) {
	var p pcm

	dec := wav.NewDecoder(r)
	if dec == nil {
		return p, fmt.Errorf("wav: error decoding")
	}

	if !dec.IsValidFile() {
		return p, fmt.Errorf("wav: not a valid wav file")
	}

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return p, fmt.Errorf("wav: %w", err)
	}
	floatBuf := buf.AsFloat32Buffer()

	// values in the buffer are integers of the file's bit depth
	scale := float64(int(1) << (dec.BitDepth - 1))
	if dec.BitDepth == 0 {
		scale = 1
	}

	numChans := int(dec.NumChans)
	if numChans < 1 {
		numChans = 1
	}

	// copy first channel only of data stream
	p.data = make([]float64, 0, len(floatBuf.Data)/numChans)
	for i := 0; i < len(floatBuf.Data); i += numChans {
		p.data = append(p.data, float64(floatBuf.Data[i])/scale)
	}

	p.info = Info{
		Format:     "wav",
		SampleRate: float64(dec.SampleRate),
		Samples:    len(p.data),
	}
	if p.info.SampleRate > 0 {
		p.info.Duration = float64(len(p.data)) / p.info.SampleRate
	}

	return p, nil
}

func decodeMP3(r io.Reader) (pcm, error) {
	var p pcm

	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return p, fmt.Errorf("mp3: %w", err)
	}

	// the decoded stream is always 16bit little endian with two channels,
	// even if the source is a single channel file. a sample is four bytes
	var raw bytes.Buffer
	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)
		raw.Write(chunk[:n])
		if err == io.EOF {
			break
		}
		if err != nil {
			return p, fmt.Errorf("mp3: %w", err)
		}
	}

	// left channel only
	b := raw.Bytes()
	p.data = make([]float64, 0, len(b)/4)
	for i := 0; i+1 < len(b); i += 4 {
		v := int16(uint16(b[i]) | uint16(b[i+1])<<8)
		p.data = append(p.data, float64(v)/32768)
	}

	p.info = Info{
		Format:     "mp3",
		SampleRate: float64(dec.SampleRate()),
		Samples:    len(p.data),
	}
	if p.info.SampleRate > 0 {
		p.info.Duration = float64(len(p.data)) / p.info.SampleRate
	}

	return p, nil
}

// reduce the number of samples to max by averaging neighbouring samples
func reduce(data []float64, max int) []float64 {
	if len(data) <= max {
		return data
	}

	out := make([]float64, max)
	for i := range out {
		start := i * len(data) / max
		end := (i + 1) * len(data) / max
		var sum float64
		for _, v := range data[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out
}
