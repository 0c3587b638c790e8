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

package performance

import (
	"time"
)

// CalcRate returns the number of instructions per second and the ratio of
// emulated time to wall time.
func CalcRate(instructions uint64, emulated time.Duration, wall time.Duration) (perSecond float64, ratio float64) {
	if wall <= 0 {
		return 0, 0
	}
	perSecond = float64(instructions) / wall.Seconds()
	ratio = emulated.Seconds() / wall.Seconds()
	return perSecond, ratio
}
