package tiger

import (
	"encoding/binary"
	"sync"
)

// The four S-boxes, stored as one contiguous table.
var table [4 * 256]uint64

var (
	t1 = table[0:256]
	t2 = table[256:512]
	t3 = table[512:768]
	t4 = table[768:1024]
)

// seed sentence from the reference implementation; exactly one block long.
const sboxSeed = "Tiger - A Fast New Hash Function, by Ross Anderson and Eli Biham"

var sboxOnce sync.Once

func sboxInit() { sboxOnce.Do(genTables) }

// genTables reproduces the published S-box generation procedure: every table
// entry starts as its index repeated in all eight bytes, then five passes of
// column-wise byte swaps shuffle the columns, driven by a running state that
// is advanced by compressing the seed sentence through the evolving tables
// themselves.
func genTables() {
	for i := range table {
		table[i] = uint64(i&0xff) * 0x0101010101010101
	}

	seed := []byte(sboxSeed)
	var msg [8]uint64
	for i := range msg {
		msg[i] = binary.LittleEndian.Uint64(seed[i*8:])
	}

	state := [3]uint64{0x0123456789abcdef, 0xfedcba9876543210, 0xf096a5b4c3b2e187}

	abc := 2
	for cnt := 0; cnt < 5; cnt++ {
		for i := 0; i < 256; i++ {
			for sb := 0; sb < 4*256; sb += 256 {
				abc++
				if abc == 3 {
					abc = 0
					compress(msg, &state)
				}
				for col := uint(0); col < 8; col++ {
					j := sb + i
					k := sb + int(byte(state[abc]>>(8*col)))
					shift := 8 * col
					mask := uint64(0xff) << shift
					vj, vk := table[j]&mask, table[k]&mask
					table[j] = table[j]&^mask | vk
					table[k] = table[k]&^mask | vj
				}
			}
		}
	}
}
