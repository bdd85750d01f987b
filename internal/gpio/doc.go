// Package gpio decodes GPIO register snapshots into pin descriptions.
//
// The input is a YAML document listing, for each port, the ten register
// words of an STM32-style GPIO block as captured from a debugger
// (x/10x of the port base address):
//
//	ports:
//	  - name: A
//	    registers: [0x6aaa9529, 0x00000000, 0x4fe9d53d, 0x64151541,
//	                0x0000c62e, 0x00008028, 0x00000000, 0x00000000,
//	                0xb0000bb0, 0x000aa771]
//
// The words are, in address order: MODER, OTYPER, OSPEEDR, PUPDR, IDR,
// ODR, BSRR, LCKR, AFRL, AFRH. Every pin of every port is rendered as a
// one-line description of its mode, pull configuration, speed and state.
package gpio
