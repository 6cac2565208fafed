// info.go defines the on-disk layout of a table blob: a fixed header
// followed by blocks, each a 256-byte info header plus packed data. All
// integers are little-endian. The solver consumes the blob through a View,
// which validates the header and block chain once and decodes each block's
// packed words into its own slice.

package prune

import "encoding/binary"

const (
	// Magic identifies a table blob.
	Magic = "GOH48TAB"

	// Version is the current blob format version. Blobs with any other
	// version are refused.
	Version = 1

	headerSize = 32
	infoSize   = 256

	// Block kinds.
	KindCocsep = 1
	KindH48    = 2
)

// Info is the header of one block.
type Info struct {
	Kind         uint8
	H            uint8
	K            uint8
	Base         uint8
	MaxValue     uint8
	Entries      uint64
	DataBytes    uint64
	Next         uint64 // offset of the next block header, 0 if last
	Distribution [21]uint64
}

func (info *Info) marshal(buf []byte) {
	for i := range buf[:infoSize] {
		buf[i] = 0
	}
	buf[0] = info.Kind
	buf[1] = info.H
	buf[2] = info.K
	buf[3] = info.Base
	buf[4] = info.MaxValue
	binary.LittleEndian.PutUint64(buf[8:], info.Entries)
	binary.LittleEndian.PutUint64(buf[16:], info.DataBytes)
	binary.LittleEndian.PutUint64(buf[24:], info.Next)
	for i, d := range info.Distribution {
		binary.LittleEndian.PutUint64(buf[32+8*i:], d)
	}
}

func (info *Info) unmarshal(buf []byte) {
	info.Kind = buf[0]
	info.H = buf[1]
	info.K = buf[2]
	info.Base = buf[3]
	info.MaxValue = buf[4]
	info.Entries = binary.LittleEndian.Uint64(buf[8:])
	info.DataBytes = binary.LittleEndian.Uint64(buf[16:])
	info.Next = binary.LittleEndian.Uint64(buf[24:])
	for i := range info.Distribution {
		info.Distribution[i] = binary.LittleEndian.Uint64(buf[32+8*i:])
	}
}

// blockBytes is the serialized size of a table with n entries of k bits.
func blockBytes(n int64, k uint8) int64 {
	return infoSize + 4*packedWords(n, k)
}

// Size returns the serialized size of the bundle.
func (t *Tables) Size() int64 {
	size := int64(headerSize) + blockBytes(CocsepEntries, 32) + blockBytes(H48Max(t.H48.H), t.H48.K)
	if t.Fallback != nil {
		size += blockBytes(H48Max(0), 4)
	}
	return size
}

// DataSize returns the blob size for the given table parameters without
// generating anything.
func DataSize(h, k uint8) (int64, error) {
	if h > 11 || (k != 2 && k != 4) || (k == 4 && h != 0) {
		return 0, ErrOptions
	}
	size := int64(headerSize) + blockBytes(CocsepEntries, 32) + blockBytes(H48Max(h), k)
	if k == 2 {
		size += blockBytes(H48Max(0), 4)
	}
	return size, nil
}

// Marshal serializes the bundle into buf and returns the number of bytes
// written. The buffer must hold at least Size() bytes; short buffers are an
// error, never a truncated write.
func (t *Tables) Marshal(buf []byte) (int64, error) {
	size := t.Size()
	if int64(len(buf)) < size {
		return 0, ErrBufferTooSmall
	}

	nblocks := uint32(2)
	if t.Fallback != nil {
		nblocks = 3
	}
	copy(buf, Magic)
	binary.LittleEndian.PutUint32(buf[8:], Version)
	binary.LittleEndian.PutUint32(buf[12:], nblocks)
	binary.LittleEndian.PutUint64(buf[16:], uint64(size))

	off := int64(headerSize)
	off = marshalBlock(buf, off, &Info{
		Kind:         KindCocsep,
		MaxValue:     t.Cocsep.MaxValue,
		Entries:      CocsepEntries,
		Distribution: t.Cocsep.Distribution,
	}, t.Cocsep.Data, true)

	off = marshalBlock(buf, off, &Info{
		Kind:         KindH48,
		H:            t.H48.H,
		K:            t.H48.K,
		Base:         t.H48.Base,
		MaxValue:     t.H48.MaxValue,
		Entries:      uint64(H48Max(t.H48.H)),
		Distribution: t.H48.Distribution,
	}, t.H48.Data, t.Fallback != nil)

	if t.Fallback != nil {
		off = marshalBlock(buf, off, &Info{
			Kind:         KindH48,
			H:            0,
			K:            4,
			MaxValue:     t.Fallback.MaxValue,
			Entries:      uint64(H48Max(0)),
			Distribution: t.Fallback.Distribution,
		}, t.Fallback.Data, false)
	}

	return off, nil
}

func marshalBlock(buf []byte, off int64, info *Info, data []uint32, hasNext bool) int64 {
	info.DataBytes = uint64(4 * len(data))
	end := off + infoSize + int64(info.DataBytes)
	if hasNext {
		info.Next = uint64(end)
	}
	info.marshal(buf[off:])
	for i, w := range data {
		binary.LittleEndian.PutUint32(buf[off+infoSize+4*int64(i):], w)
	}
	return end
}

// Block is one parsed block of a blob.
type Block struct {
	Info Info
	Data []uint32
}

// View is a parsed, validated table blob.
type View struct {
	Cocsep   Block
	H48      Block
	Fallback *Block
}

// ReadTables parses and validates a table blob.
func ReadTables(buf []byte) (*View, error) {
	blocks, err := readBlocks(buf)
	if err != nil {
		return nil, err
	}

	if len(blocks) < 2 || blocks[0].Info.Kind != KindCocsep ||
		blocks[0].Info.Entries != CocsepEntries ||
		blocks[1].Info.Kind != KindH48 {
		return nil, ErrTableSize
	}

	view := &View{Cocsep: blocks[0], H48: blocks[1]}
	if view.H48.Info.K == 2 {
		// Entries below the base need the full-precision fallback.
		if len(blocks) < 3 || blocks[2].Info.Kind != KindH48 ||
			blocks[2].Info.H != 0 || blocks[2].Info.K != 4 {
			return nil, ErrTableSize
		}
		view.Fallback = &blocks[2]
	}

	return view, nil
}

func readBlocks(buf []byte) ([]Block, error) {
	if int64(len(buf)) < headerSize || string(buf[:8]) != Magic {
		return nil, ErrTableSize
	}
	if binary.LittleEndian.Uint32(buf[8:]) != Version {
		return nil, ErrTableSize
	}
	nblocks := binary.LittleEndian.Uint32(buf[12:])
	size := binary.LittleEndian.Uint64(buf[16:])
	if size > uint64(len(buf)) {
		return nil, ErrTableSize
	}

	blocks := make([]Block, 0, nblocks)
	off := int64(headerSize)
	for b := uint32(0); b < nblocks; b++ {
		if off+infoSize > int64(size) {
			return nil, ErrTableSize
		}
		var info Info
		info.unmarshal(buf[off:])
		dataOff := off + infoSize
		if dataOff+int64(info.DataBytes) > int64(size) {
			return nil, ErrTableSize
		}
		words := int64(info.DataBytes) / 4
		data := make([]uint32, words)
		for i := int64(0); i < words; i++ {
			data[i] = binary.LittleEndian.Uint32(buf[dataOff+4*i:])
		}
		blocks = append(blocks, Block{Info: info, Data: data})
		if info.Next == 0 {
			break
		}
		off = int64(info.Next)
	}

	return blocks, nil
}
