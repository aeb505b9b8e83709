// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

// Package ethgen provides generators for EVM data such as addresses,
// storage slots, 256-bit words and account states.
package ethgen

import (
	"encoding/binary"
	"fmt"

	"github.com/0xsoniclabs/propgen/gen"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// Account is a generated account state.
type Account struct {
	Nonce   uint64
	Balance *uint256.Int
	Code    []byte
	Storage map[common.Hash]common.Hash
}

// Address generates uniformly random addresses from 20 random bytes.
func Address() gen.Gen[common.Address] {
	return gen.Map(gen.Fill(gen.Byte(), common.AddressLength), common.BytesToAddress)
}

// Hash generates uniformly random 32-byte hashes.
func Hash() gen.Gen[common.Hash] {
	return gen.Map(gen.Fill(gen.Byte(), common.HashLength), common.BytesToHash)
}

// ToAddress converts an index to an address. Index zero is the zero address.
func ToAddress(idx int64) (common.Address, error) {
	var a common.Address
	if idx < 0 {
		return a, fmt.Errorf("invalid index (%v)", idx)
	}
	if idx != 0 {
		arr := make([]byte, binary.MaxVarintLen64)
		binary.PutVarint(arr, -idx)
		a.SetBytes(crypto.Keccak256(arr))
	}
	return a, nil
}

// ToHash converts an index to a hash. Index zero is the zero hash.
func ToHash(idx int64) (common.Hash, error) {
	var h common.Hash
	if idx < 0 {
		return h, fmt.Errorf("invalid index (%v)", idx)
	}
	if idx != 0 {
		arr := make([]byte, binary.MaxVarintLen64)
		binary.PutVarint(arr, idx)
		h = crypto.Keccak256Hash(arr)
	}
	return h, nil
}

// IndexedAddress maps generated indices onto a fixed population of
// addresses so that the same contracts recur across samples.
func IndexedAddress(indices gen.Gen[int]) gen.Gen[common.Address] {
	return gen.Map(indices, func(i int) common.Address {
		a, err := ToAddress(int64(i))
		if err != nil {
			panic(err)
		}
		return a
	})
}

// IndexedHash maps generated indices onto a fixed population of hashes.
func IndexedHash(indices gen.Gen[int]) gen.Gen[common.Hash] {
	return gen.Map(indices, func(i int) common.Hash {
		h, err := ToHash(int64(i))
		if err != nil {
			panic(err)
		}
		return h
	})
}

// Word generates a uniformly random 256-bit word from four 64-bit draws,
// least significant limb first.
func Word() gen.Gen[*uint256.Int] {
	return gen.Map(gen.Fill(gen.Long(), 4), func(limbs []int64) *uint256.Int {
		return &uint256.Int{uint64(limbs[0]), uint64(limbs[1]), uint64(limbs[2]), uint64(limbs[3])}
	})
}

// Balance generates balances in [0,limit].
func Balance(limit uint64) gen.Gen[*uint256.Int] {
	return gen.Map(gen.ChooseIntegral(uint64(0), limit), uint256.NewInt)
}

// Nonce generates nonces in [0,limit].
func Nonce(limit uint64) gen.Gen[uint64] {
	return gen.ChooseIntegral(uint64(0), limit)
}

// StorageValue generates slot values: mostly small numbers, sometimes
// zero and sometimes a full random word.
func StorageValue() gen.Gen[common.Hash] {
	small := gen.Map(gen.ChooseIntegral(uint64(1), 1<<16), func(x uint64) common.Hash {
		return common.Hash(uint256.NewInt(x).Bytes32())
	})
	full := gen.Map(Word(), func(w *uint256.Int) common.Hash {
		return common.Hash(w.Bytes32())
	})
	return gen.Frequency(
		gen.Freq[common.Hash]{Weight: 1, Gen: gen.Pure(common.Hash{})},
		gen.Freq[common.Hash]{Weight: 6, Gen: small},
		gen.Freq[common.Hash]{Weight: 3, Gen: full},
	)
}

// Storage generates a storage map; later slots overwrite earlier ones.
func Storage(keys gen.Gen[common.Hash], ss gen.SizeSpec) gen.Gen[map[common.Hash]common.Hash] {
	return gen.MapBy(StorageValue(), keys, ss)
}

// Code generates contract byte code.
func Code(ss gen.SizeSpec) gen.Gen[[]byte] {
	return gen.FillSS(gen.Byte(), ss)
}

// AccountOf generates accounts with the given balance limit, code size
// and storage size. Fields are drawn in declaration order.
func AccountOf(balanceLimit uint64, codeSize, storageSize gen.SizeSpec) gen.Gen[Account] {
	nonce := Nonce(1 << 32)
	balance := Balance(balanceLimit)
	code := Code(codeSize)
	storage := Storage(Hash(), storageSize)
	return func(ctx *gen.Ctx) Account {
		return Account{
			Nonce:   nonce.Run(ctx),
			Balance: balance.Run(ctx),
			Code:    code.Run(ctx),
			Storage: storage.Run(ctx),
		}
	}
}

// WorldState generates a state in which each address independently has an
// account or not.
func WorldState(addresses []common.Address, accounts gen.Gen[Account]) gen.Gen[map[common.Address]Account] {
	return gen.MapByKeySubset(accounts, addresses)
}
