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

package hardware

import (
	"github.com/megagopher/megagopher/curated"
	"github.com/megagopher/megagopher/hardware/cpu/z80"
	"github.com/megagopher/megagopher/hardware/ports"
	"github.com/megagopher/megagopher/logger"
	"github.com/megagopher/megagopher/notifications"
	"github.com/megagopher/megagopher/savestate"
)

// the byte order of the buffers passed to the savestate store. 68K RAM is
// stored in the session in big-endian order.
const stateOrder = savestate.BigEndian

type stateBlock struct {
	kind savestate.BlockKind
	data []byte
}

// the blocks transferred by LoadState(). data is a buffer of the correct size
// that is filled by the store.
func (s *Session) loadBlocks() []stateBlock {
	blocks := []stateBlock{
		{kind: savestate.BlockZ80Mem},
		{kind: savestate.BlockZ80Reg},
		{kind: savestate.BlockM68KMem},
		{kind: savestate.BlockIO},
		{kind: savestate.BlockZ80Ctrl},
	}
	for i := range blocks {
		blocks[i].data = make([]byte, blocks[i].kind.Size())
	}
	if len(s.sram) > 0 {
		blocks = append(blocks, stateBlock{kind: savestate.BlockSRam, data: make([]byte, len(s.sram))})
	}
	return blocks
}

// the blocks transferred by SaveState(), in the same order as loadBlocks().
func (s *Session) saveBlocks() ([]stateBlock, error) {
	regs, err := s.Z80.SaveRegisters()
	if err != nil {
		return nil, err
	}

	var io [3]savestate.IOPort
	for i := range io {
		d := s.Ports.Device(ports.PortID(i))
		io[i] = savestate.IOPort{
			Ctrl:    d.Ctrl,
			Data:    d.MDData,
			SerTx:   d.SerTx,
			SerRx:   d.SerRx,
			SerCtrl: d.SerCtrl,
		}
	}

	ctrl := savestate.Z80Ctrl{
		BusReq: s.ctrl.State&z80.StateBusReq == z80.StateBusReq,
		Reset:  s.ctrl.State&z80.StateReset == z80.StateReset,
		Bank:   uint16(s.Z80Bus.Bank() >> 15),
	}

	blocks := []stateBlock{
		{kind: savestate.BlockZ80Mem, data: s.Z80Bus.RAM()},
		{kind: savestate.BlockZ80Reg, data: savestate.EncodeZ80Reg(regs, stateOrder)},
		{kind: savestate.BlockM68KMem, data: s.Mem.RAM()},
		{kind: savestate.BlockIO, data: savestate.EncodeIO(io)},
		{kind: savestate.BlockZ80Ctrl, data: savestate.EncodeZ80Ctrl(ctrl, stateOrder)},
	}
	if len(s.sram) > 0 {
		blocks = append(blocks, stateBlock{kind: savestate.BlockSRam, data: s.sram})
	}

	return blocks, nil
}

// stores that log can be told to use the session's permission.
type logPermitter interface {
	SetLogPermission(perm logger.Permission)
}

// SaveState saves the session to the store. The store must be open for
// saving. Returns the number of blocks saved. A block that the store does not
// support is not counted.
func (s *Session) SaveState(store savestate.Store) (int, error) {
	if s.Rom == nil {
		return 0, curated.Errorf(NoCartridge)
	}

	if p, ok := store.(logPermitter); ok {
		p.SetLogPermission(s.Instance)
	}

	blocks, err := s.saveBlocks()
	if err != nil {
		return 0, curated.Errorf("session: %v", err)
	}

	var count int
	for _, b := range blocks {
		n, err := store.Save(b.kind, stateOrder, b.data)
		if err != nil {
			return count, curated.Errorf("session: %v", err)
		}
		if n > 0 {
			count++
		}
	}

	logger.Logf(s.Instance, "session", "saved %d blocks", count)
	if err := s.notify.Notify(notifications.NotifyStateSaved, count); err != nil {
		logger.Log(s.Instance, "session", err)
	}

	return count, nil
}

// LoadState restores the session from the store. The store must be open for
// loading. Every block is read from the store before any of the session is
// changed, so a failure leaves the session as it was. A block that the store
// does not support leaves that part of the session unchanged. Returns the
// number of blocks loaded.
func (s *Session) LoadState(store savestate.Store) (int, error) {
	if s.Rom == nil {
		return 0, curated.Errorf(NoCartridge)
	}

	if p, ok := store.(logPermitter); ok {
		p.SetLogPermission(s.Instance)
	}

	blocks := s.loadBlocks()

	loaded := make(map[savestate.BlockKind][]byte, len(blocks))
	for _, b := range blocks {
		n, err := store.Load(b.kind, stateOrder, b.data)
		if err != nil {
			return 0, curated.Errorf("session: %v", err)
		}
		if n > 0 {
			loaded[b.kind] = b.data[:n]
		}
	}

	// decode before changing anything
	var regs z80.Registers
	var io [3]savestate.IOPort
	var ctrl savestate.Z80Ctrl
	var err error

	if data, ok := loaded[savestate.BlockZ80Reg]; ok {
		if regs, err = savestate.DecodeZ80Reg(data, stateOrder); err != nil {
			return 0, curated.Errorf("session: %v", err)
		}
	}
	if data, ok := loaded[savestate.BlockIO]; ok {
		if io, err = savestate.DecodeIO(data); err != nil {
			return 0, curated.Errorf("session: %v", err)
		}
	}
	if data, ok := loaded[savestate.BlockZ80Ctrl]; ok {
		if ctrl, err = savestate.DecodeZ80Ctrl(data, stateOrder); err != nil {
			return 0, curated.Errorf("session: %v", err)
		}
	}

	// the only part of the restore that can fail
	if _, ok := loaded[savestate.BlockZ80Reg]; ok {
		if err := s.Z80.RestoreRegisters(regs); err != nil {
			return 0, curated.Errorf("session: %v", err)
		}
	}
	if data, ok := loaded[savestate.BlockZ80Mem]; ok {
		copy(s.Z80Bus.RAM(), data)
	}
	if data, ok := loaded[savestate.BlockM68KMem]; ok {
		copy(s.Mem.RAM(), data)
	}
	if _, ok := loaded[savestate.BlockIO]; ok {
		for i, p := range io {
			s.Ports.Device(ports.PortID(i)).Restore(p.Ctrl, p.Data, p.SerTx, p.SerRx, p.SerCtrl)
		}
	}
	if _, ok := loaded[savestate.BlockZ80Ctrl]; ok {
		s.ctrl.State &= z80.StatePresent
		if ctrl.BusReq {
			s.ctrl.State |= z80.StateBusReq
		}
		if ctrl.Reset {
			s.ctrl.State |= z80.StateReset
		}
		s.Z80Bus.SetBank(uint32(ctrl.Bank) << 15)
	}
	if data, ok := loaded[savestate.BlockSRam]; ok {
		copy(s.sram, data)
	}

	logger.Logf(s.Instance, "session", "loaded %d blocks", len(loaded))
	if err := s.notify.Notify(notifications.NotifyStateLoaded, len(loaded)); err != nil {
		logger.Log(s.Instance, "session", err)
	}

	return len(loaded), nil
}
