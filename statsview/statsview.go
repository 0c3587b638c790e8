// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

//go:build statsview

package statsview

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/gopher8/logger"
)

// Address of the statsview server.
const Address = "localhost:12800"

// the interval between samples in milliseconds
const interval = 1000

// Launch starts the statsview server in its own goroutine. The returned
// function stops the server.
func Launch(output io.Writer) func() {
	viewer.SetConfiguration(
		viewer.WithAddr(Address),
		viewer.WithInterval(interval),
	)
	mgr := statsview.New()

	go func() {
		err := mgr.Start()
		if err != nil && err != http.ErrServerClosed {
			logger.Log(logger.Allow, "statsview", err)
		}
	}()

	fmt.Fprintf(output, "stats server available at http://%s/debug/statsview\n", Address)

	return mgr.Stop
}

// Available is true when the program is built with the statsview tag.
func Available() bool {
	return true
}
