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

package waveform_test

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherscope/signal"
	"github.com/jetsetilly/gopherscope/test"
	"github.com/jetsetilly/gopherscope/waveform"
)

func TestExportLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "sine.wav")

	src := signal.NewSine(5, 2*math.Pi*1000, 0.5, 1)
	exp := waveform.DefaultExport
	test.DemandSuccess(t, exp.WriteFile(filename, src))

	tbl, info, err := waveform.LoadFile(filename)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, info.Format, "wav")
	test.ExpectEquality(t, info.Samples, 48)
	test.ExpectEquality(t, info.SampleRate, 48000.0)
	test.ExpectApproximate(t, tbl.Period(), 0.001, 1e-9)

	// one bit of 16 bit quantisation at full scale of 10V
	lsb := exp.FullScale / 32767
	for i := range 48 {
		tm := float64(i) / 48000
		test.ExpectWithin(t, tbl.V(tm)*exp.FullScale, src.V(tm), 2*lsb, i)
	}
	test.ExpectWithin(t, tbl.Mean()*exp.FullScale, 1.0, 2*lsb)
}

func TestExportClipping(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "clipped.wav")

	exp := waveform.Export{SampleRate: 8000, Periods: 2, FullScale: 1}
	test.DemandSuccess(t, exp.WriteFile(filename, signal.NewSquare(5, 2*math.Pi*100, 0, 0)))

	tbl, info, err := waveform.LoadFile(filename)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, info.Samples, 160)
	test.ExpectWithin(t, tbl.V(0.001), 1.0, 1e-4)
	test.ExpectWithin(t, tbl.V(0.006), -1.0, 1e-4)
}

func TestNoOverwrite(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "exists.wav")
	test.DemandSuccess(t, waveform.DefaultExport.WriteFile(filename, signal.NewSine(1, 2*math.Pi*1000, 0, 0)))

	err := waveform.DefaultExport.WriteFile(filename, signal.NewSine(1, 2*math.Pi*1000, 0, 0))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, waveform.ErrFileExists))
}

func TestReduce(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "long.wav")

	exp := waveform.Export{SampleRate: 8000, Periods: 1, FullScale: 10}
	test.DemandSuccess(t, exp.WriteFile(filename, signal.NewSawtooth(10, 2*math.Pi, 0, 0)))

	tbl, info, err := waveform.LoadFile(filename)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, info.Samples, 8000)
	test.ExpectEquality(t, tbl.Len(), waveform.MaxSamples)
	test.ExpectApproximate(t, tbl.Period(), 1.0, 1e-9)
	test.ExpectWithin(t, tbl.V(0.5), 0.0, 0.01)
}

func TestBadInput(t *testing.T) {
	_, _, err := waveform.Load(strings.NewReader("not audio"), "ogg")
	test.ExpectSuccess(t, errors.Is(err, waveform.ErrFormat))

	_, _, err = waveform.Load(strings.NewReader("not audio"), ".wav")
	test.ExpectFailure(t, err)

	_, _, err = waveform.LoadFile(filepath.Join(t.TempDir(), "missing.mp3"))
	test.ExpectFailure(t, err)

	err = waveform.Export{SampleRate: 0, FullScale: 1}.WriteFile(filepath.Join(t.TempDir(), "x.wav"), signal.Ground)
	test.ExpectFailure(t, err)
}
