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

// Package statsview serves runtime statistics (heap, goroutines, GC pauses)
// over HTTP while the interpreter runs, using the
// github.com/go-echarts/statsview package.
//
// The server is only compiled in with the statsview build tag:
//
//	go build -tags statsview
//
// and is launched with the -statsview flag. Charts are then available at
// localhost:12800/debug/statsview and the standard pprof pages at
// localhost:12800/debug/pprof/.
package statsview
