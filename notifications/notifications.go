// This file is part of Megagopher.
//
// Megagopher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Megagopher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Megagopher.  If not, see <https://www.gnu.org/licenses/>.

package notifications

// Notice describes events that somehow change the presentation of the
// emulation. These notifications can be used to present additional information
// to the user
type Notice string

// List of defined notifications.
const (
	// the Pico storyware page has changed because of the page buttons. the
	// parameter is the new page number
	NotifyPicoPageUp   Notice = "NotifyPicoPageUp"
	NotifyPicoPageDown Notice = "NotifyPicoPageDown"

	// the Pico storyware page has been set directly
	NotifyPicoPageSet Notice = "NotifyPicoPageSet"

	// a savestate has been saved or loaded. the parameter is the number of
	// blocks transferred
	NotifyStateSaved  Notice = "NotifyStateSaved"
	NotifyStateLoaded Notice = "NotifyStateLoaded"
)

// Notify is used for direct communication between the hardware and the
// presentation layer. The param value is specific to the Notice.
type Notify interface {
	Notify(notice Notice, param int) error
}

// Discard is an implementation of Notify that drops every notification.
type Discard struct{}

// Notify implements the Notify interface.
func (Discard) Notify(_ Notice, _ int) error {
	return nil
}
