// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pb

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// StringTable is the block-local string arena every Node/Way/Relation
// key, value, and role_sid references by index. Index 0 is reserved
// for the empty string.
type StringTable struct {
	S [][]byte
}

func (t *StringTable) GetS() [][]byte {
	if t == nil {
		return nil
	}
	return t.S
}

func (t *StringTable) marshalInto(b []byte) []byte {
	for _, s := range t.S {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, s)
	}
	return b
}

func (t *StringTable) unmarshal(buf []byte) error {
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return errTruncated
		}
		buf = buf[n:]
		switch num {
		case 1:
			v, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return errTruncated
			}
			t.S = append(t.S, append([]byte(nil), v...))
			buf = buf[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, buf)
			if n < 0 {
				return errTruncated
			}
			buf = buf[n:]
		}
	}
	return nil
}

// Info carries per-element version/authorship metadata for the
// non-dense (sparse) Node, Way, and Relation forms.
type Info struct {
	Version   int32
	Timestamp int64
	Changeset int64
	Uid       int32
	UserSid   uint32
	Visible   bool
	hasVisible bool
}

// NewInfo builds an Info that always serializes its Visible bit,
// rather than relying on the true-when-absent default.
func NewInfo(version int32, timestamp, changeset int64, uid int32, userSid uint32, visible bool) *Info {
	return &Info{
		Version:    version,
		Timestamp:  timestamp,
		Changeset:  changeset,
		Uid:        uid,
		UserSid:    userSid,
		Visible:    visible,
		hasVisible: true,
	}
}

func (i *Info) GetVersion() int32 {
	if i == nil {
		return -1
	}
	return i.Version
}

func (i *Info) GetTimestamp() int64 {
	if i == nil {
		return 0
	}
	return i.Timestamp
}

func (i *Info) GetChangeset() int64 {
	if i == nil {
		return 0
	}
	return i.Changeset
}

func (i *Info) GetUid() int32 {
	if i == nil {
		return 0
	}
	return i.Uid
}

func (i *Info) GetUserSid() uint32 {
	if i == nil {
		return 0
	}
	return i.UserSid
}

// GetVisible returns the visible flag, defaulting to true when absent
// from the wire (per the OSMPBF convention that omitted visibility
// means visible).
func (i *Info) GetVisible() bool {
	if i == nil || !i.hasVisible {
		return true
	}
	return i.Visible
}

func (i *Info) marshalInto(b []byte) []byte {
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(uint32(i.Version)))
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(i.Timestamp))
	b = protowire.AppendTag(b, 3, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(i.Changeset))
	b = protowire.AppendTag(b, 4, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(uint32(i.Uid)))
	b = protowire.AppendTag(b, 5, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(i.UserSid))
	if i.hasVisible {
		b = protowire.AppendTag(b, 6, protowire.VarintType)
		n := uint64(0)
		if i.Visible {
			n = 1
		}
		b = protowire.AppendVarint(b, n)
	}
	return b
}

func (i *Info) unmarshal(buf []byte) error {
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return errTruncated
		}
		buf = buf[n:]
		switch num {
		case 1:
			v, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return errTruncated
			}
			i.Version = int32(v)
			buf = buf[n:]
		case 2:
			v, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return errTruncated
			}
			i.Timestamp = int64(v)
			buf = buf[n:]
		case 3:
			v, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return errTruncated
			}
			i.Changeset = int64(v)
			buf = buf[n:]
		case 4:
			v, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return errTruncated
			}
			i.Uid = int32(v)
			buf = buf[n:]
		case 5:
			v, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return errTruncated
			}
			i.UserSid = uint32(v)
			buf = buf[n:]
		case 6:
			v, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return errTruncated
			}
			i.Visible = v != 0
			i.hasVisible = true
			buf = buf[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, buf)
			if n < 0 {
				return errTruncated
			}
			buf = buf[n:]
		}
	}
	return nil
}

// DenseInfo is the columnar, delta-encoded counterpart of Info used
// inside a DenseNodes group: one slice per field, index-aligned with
// DenseNodes.Id.
type DenseInfo struct {
	Version   []int32
	Timestamp []int64
	Changeset []int64
	Uid       []int32
	UserSid   []int32
	Visible   []bool
}

func (d *DenseInfo) GetVersion() []int32 {
	if d == nil {
		return nil
	}
	return d.Version
}

func (d *DenseInfo) GetTimestamp() []int64 {
	if d == nil {
		return nil
	}
	return d.Timestamp
}

func (d *DenseInfo) GetChangeset() []int64 {
	if d == nil {
		return nil
	}
	return d.Changeset
}

func (d *DenseInfo) GetUid() []int32 {
	if d == nil {
		return nil
	}
	return d.Uid
}

func (d *DenseInfo) GetUserSid() []int32 {
	if d == nil {
		return nil
	}
	return d.UserSid
}

func (d *DenseInfo) GetVisible() []bool {
	if d == nil {
		return nil
	}
	return d.Visible
}

func (d *DenseInfo) marshalInto(b []byte) []byte {
	vs := make([]uint64, len(d.Version))
	for i, v := range d.Version {
		vs[i] = uint64(uint32(v))
	}
	b = appendPackedVarint(b, 1, vs)
	b = appendPackedSVarint(b, 2, d.Timestamp)
	b = appendPackedSVarint(b, 3, d.Changeset)
	b = appendPackedSVarint32(b, 4, d.Uid)
	b = appendPackedSVarint32(b, 5, d.UserSid)
	b = appendPackedBool(b, 6, d.Visible)
	return b
}

func (d *DenseInfo) unmarshal(buf []byte) error {
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return errTruncated
		}
		buf = buf[n:]
		v, n := protowire.ConsumeBytes(buf)
		if n < 0 {
			return errTruncated
		}
		buf = buf[n:]
		_ = typ
		var err error
		switch num {
		case 1:
			raw, e := consumePackedInt32(v)
			err = e
			d.Version = raw
		case 2:
			d.Timestamp, err = consumePackedSVarint(v)
		case 3:
			d.Changeset, err = consumePackedSVarint(v)
		case 4:
			d.Uid, err = consumePackedSVarint32(v)
		case 5:
			d.UserSid, err = consumePackedSVarint32(v)
		case 6:
			d.Visible, err = consumePackedBool(v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// DenseNodes is the compact, columnar, delta-encoded node
// representation used by essentially every real-world PBF extract.
type DenseNodes struct {
	Id        []int64
	Denseinfo *DenseInfo
	Lat       []int64
	Lon       []int64
	KeysVals  []int32
}

func (d *DenseNodes) GetId() []int64 {
	if d == nil {
		return nil
	}
	return d.Id
}

func (d *DenseNodes) GetDenseinfo() *DenseInfo {
	if d == nil {
		return nil
	}
	return d.Denseinfo
}

func (d *DenseNodes) GetLat() []int64 {
	if d == nil {
		return nil
	}
	return d.Lat
}

func (d *DenseNodes) GetLon() []int64 {
	if d == nil {
		return nil
	}
	return d.Lon
}

func (d *DenseNodes) GetKeysVals() []int32 {
	if d == nil {
		return nil
	}
	return d.KeysVals
}

func (d *DenseNodes) marshalInto(b []byte) []byte {
	b = appendPackedSVarint(b, 1, d.Id)
	if d.Denseinfo != nil {
		var inner []byte
		inner = d.Denseinfo.marshalInto(inner)
		b = protowire.AppendTag(b, 5, protowire.BytesType)
		b = protowire.AppendBytes(b, inner)
	}
	b = appendPackedSVarint(b, 8, d.Lat)
	b = appendPackedSVarint(b, 9, d.Lon)
	kv := make([]uint64, len(d.KeysVals))
	for i, v := range d.KeysVals {
		kv[i] = uint64(uint32(v))
	}
	b = appendPackedVarint(b, 10, kv)
	return b
}

func (d *DenseNodes) unmarshal(buf []byte) error {
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return errTruncated
		}
		buf = buf[n:]
		v, n := protowire.ConsumeBytes(buf)
		if n < 0 {
			return errTruncated
		}
		buf = buf[n:]
		_ = typ
		var err error
		switch num {
		case 1:
			d.Id, err = consumePackedSVarint(v)
		case 5:
			di := &DenseInfo{}
			err = di.unmarshal(v)
			d.Denseinfo = di
		case 8:
			d.Lat, err = consumePackedSVarint(v)
		case 9:
			d.Lon, err = consumePackedSVarint(v)
		case 10:
			d.KeysVals, err = consumePackedInt32(v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Node is the sparse (non-dense) node representation: a full absolute
// id, lat, and lon on the wire rather than a delta in a columnar run.
type Node struct {
	Id   int64
	Keys []uint32
	Vals []uint32
	Info *Info
	Lat  int64
	Lon  int64
}

func (n *Node) GetId() int64 {
	if n == nil {
		return 0
	}
	return n.Id
}
func (n *Node) GetKeys() []uint32 {
	if n == nil {
		return nil
	}
	return n.Keys
}
func (n *Node) GetVals() []uint32 {
	if n == nil {
		return nil
	}
	return n.Vals
}
func (n *Node) GetInfo() *Info {
	if n == nil {
		return nil
	}
	return n.Info
}
func (n *Node) GetLat() int64 {
	if n == nil {
		return 0
	}
	return n.Lat
}
func (n *Node) GetLon() int64 {
	if n == nil {
		return 0
	}
	return n.Lon
}

func (n *Node) marshalInto(b []byte) []byte {
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(n.Id))
	keys := make([]uint64, len(n.Keys))
	for i, v := range n.Keys {
		keys[i] = uint64(v)
	}
	b = appendPackedVarint(b, 2, keys)
	vals := make([]uint64, len(n.Vals))
	for i, v := range n.Vals {
		vals[i] = uint64(v)
	}
	b = appendPackedVarint(b, 3, vals)
	if n.Info != nil {
		var inner []byte
		inner = n.Info.marshalInto(inner)
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendBytes(b, inner)
	}
	b = protowire.AppendTag(b, 8, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(n.Lat))
	b = protowire.AppendTag(b, 9, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(n.Lon))
	return b
}

func (n *Node) unmarshal(buf []byte) error {
	for len(buf) > 0 {
		num, typ, n2 := protowire.ConsumeTag(buf)
		if n2 < 0 {
			return errTruncated
		}
		buf = buf[n2:]
		switch num {
		case 1:
			v, m := protowire.ConsumeVarint(buf)
			if m < 0 {
				return errTruncated
			}
			n.Id = protowire.DecodeZigZag(v)
			buf = buf[m:]
		case 8:
			v, m := protowire.ConsumeVarint(buf)
			if m < 0 {
				return errTruncated
			}
			n.Lat = protowire.DecodeZigZag(v)
			buf = buf[m:]
		case 9:
			v, m := protowire.ConsumeVarint(buf)
			if m < 0 {
				return errTruncated
			}
			n.Lon = protowire.DecodeZigZag(v)
			buf = buf[m:]
		case 2, 3, 4:
			v, m := protowire.ConsumeBytes(buf)
			if m < 0 {
				return errTruncated
			}
			var err error
			switch num {
			case 2:
				n.Keys, err = consumePackedUint32(v)
			case 3:
				n.Vals, err = consumePackedUint32(v)
			case 4:
				info := &Info{}
				err = info.unmarshal(v)
				n.Info = info
			}
			if err != nil {
				return err
			}
			buf = buf[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, buf)
			if m < 0 {
				return errTruncated
			}
			buf = buf[m:]
		}
	}
	return nil
}

// Way is an ordered list of member node references plus tags.
type Way struct {
	Id   int64
	Keys []uint32
	Vals []uint32
	Info *Info
	Refs []int64
}

func (w *Way) GetId() int64 {
	if w == nil {
		return 0
	}
	return w.Id
}
func (w *Way) GetKeys() []uint32 {
	if w == nil {
		return nil
	}
	return w.Keys
}
func (w *Way) GetVals() []uint32 {
	if w == nil {
		return nil
	}
	return w.Vals
}
func (w *Way) GetInfo() *Info {
	if w == nil {
		return nil
	}
	return w.Info
}
func (w *Way) GetRefs() []int64 {
	if w == nil {
		return nil
	}
	return w.Refs
}

func (w *Way) marshalInto(b []byte) []byte {
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(w.Id))
	keys := make([]uint64, len(w.Keys))
	for i, v := range w.Keys {
		keys[i] = uint64(v)
	}
	b = appendPackedVarint(b, 2, keys)
	vals := make([]uint64, len(w.Vals))
	for i, v := range w.Vals {
		vals[i] = uint64(v)
	}
	b = appendPackedVarint(b, 3, vals)
	if w.Info != nil {
		var inner []byte
		inner = w.Info.marshalInto(inner)
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendBytes(b, inner)
	}
	b = appendPackedSVarint(b, 8, w.Refs)
	return b
}

func (w *Way) unmarshal(buf []byte) error {
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return errTruncated
		}
		buf = buf[n:]
		switch num {
		case 1:
			v, m := protowire.ConsumeVarint(buf)
			if m < 0 {
				return errTruncated
			}
			w.Id = int64(v)
			buf = buf[m:]
		case 2, 3, 4, 8:
			v, m := protowire.ConsumeBytes(buf)
			if m < 0 {
				return errTruncated
			}
			var err error
			switch num {
			case 2:
				w.Keys, err = consumePackedUint32(v)
			case 3:
				w.Vals, err = consumePackedUint32(v)
			case 4:
				info := &Info{}
				err = info.unmarshal(v)
				w.Info = info
			case 8:
				w.Refs, err = consumePackedSVarint(v)
			}
			if err != nil {
				return err
			}
			buf = buf[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, buf)
			if m < 0 {
				return errTruncated
			}
			buf = buf[m:]
		}
	}
	return nil
}

// Relation_MemberType enumerates the kind of entity a relation member
// references.
type Relation_MemberType int32

const (
	Relation_NODE     Relation_MemberType = 0
	Relation_WAY       Relation_MemberType = 1
	Relation_RELATION  Relation_MemberType = 2
)

// Relation is an ordered, typed, and (optionally) role-tagged
// collection of node/way/relation members.
type Relation struct {
	Id       int64
	Keys     []uint32
	Vals     []uint32
	Info     *Info
	RolesSid []int32
	Memids   []int64
	Types    []Relation_MemberType
}

func (r *Relation) GetId() int64 {
	if r == nil {
		return 0
	}
	return r.Id
}
func (r *Relation) GetKeys() []uint32 {
	if r == nil {
		return nil
	}
	return r.Keys
}
func (r *Relation) GetVals() []uint32 {
	if r == nil {
		return nil
	}
	return r.Vals
}
func (r *Relation) GetInfo() *Info {
	if r == nil {
		return nil
	}
	return r.Info
}
func (r *Relation) GetRolesSid() []int32 {
	if r == nil {
		return nil
	}
	return r.RolesSid
}
func (r *Relation) GetMemids() []int64 {
	if r == nil {
		return nil
	}
	return r.Memids
}
func (r *Relation) GetTypes() []Relation_MemberType {
	if r == nil {
		return nil
	}
	return r.Types
}

func (r *Relation) marshalInto(b []byte) []byte {
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(r.Id))
	keys := make([]uint64, len(r.Keys))
	for i, v := range r.Keys {
		keys[i] = uint64(v)
	}
	b = appendPackedVarint(b, 2, keys)
	vals := make([]uint64, len(r.Vals))
	for i, v := range r.Vals {
		vals[i] = uint64(v)
	}
	b = appendPackedVarint(b, 3, vals)
	if r.Info != nil {
		var inner []byte
		inner = r.Info.marshalInto(inner)
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendBytes(b, inner)
	}
	roles := make([]uint64, len(r.RolesSid))
	for i, v := range r.RolesSid {
		roles[i] = uint64(uint32(v))
	}
	b = appendPackedVarint(b, 8, roles)
	b = appendPackedSVarint(b, 9, r.Memids)
	types := make([]uint64, len(r.Types))
	for i, t := range r.Types {
		types[i] = uint64(t)
	}
	b = appendPackedVarint(b, 10, types)
	return b
}

func (r *Relation) unmarshal(buf []byte) error {
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return errTruncated
		}
		buf = buf[n:]
		switch num {
		case 1:
			v, m := protowire.ConsumeVarint(buf)
			if m < 0 {
				return errTruncated
			}
			r.Id = int64(v)
			buf = buf[m:]
		case 2, 3, 4, 8, 9, 10:
			v, m := protowire.ConsumeBytes(buf)
			if m < 0 {
				return errTruncated
			}
			var err error
			switch num {
			case 2:
				r.Keys, err = consumePackedUint32(v)
			case 3:
				r.Vals, err = consumePackedUint32(v)
			case 4:
				info := &Info{}
				err = info.unmarshal(v)
				r.Info = info
			case 8:
				r.RolesSid, err = consumePackedInt32(v)
			case 9:
				r.Memids, err = consumePackedSVarint(v)
			case 10:
				raw, e := consumePackedInt32(v)
				err = e
				r.Types = make([]Relation_MemberType, len(raw))
				for i, t := range raw {
					r.Types[i] = Relation_MemberType(t)
				}
			}
			if err != nil {
				return err
			}
			buf = buf[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, buf)
			if m < 0 {
				return errTruncated
			}
			buf = buf[m:]
		}
	}
	return nil
}

// ChangeSet is never used by real extracts; its presence in a
// PrimitiveGroup is rejected rather than silently decoded.
type ChangeSet struct {
	Id int64
}

func (c *ChangeSet) GetId() int64 {
	if c == nil {
		return 0
	}
	return c.Id
}

// PrimitiveGroup holds exactly one kind of element: either a run of
// sparse Nodes, a single DenseNodes, a run of Ways, a run of
// Relations, or (unsupported) a run of ChangeSets.
type PrimitiveGroup struct {
	Nodes      []*Node
	Dense      *DenseNodes
	Ways       []*Way
	Relations  []*Relation
	Changesets []*ChangeSet
}

func (g *PrimitiveGroup) GetNodes() []*Node {
	if g == nil {
		return nil
	}
	return g.Nodes
}
func (g *PrimitiveGroup) GetDense() *DenseNodes {
	if g == nil {
		return nil
	}
	return g.Dense
}
func (g *PrimitiveGroup) GetWays() []*Way {
	if g == nil {
		return nil
	}
	return g.Ways
}
func (g *PrimitiveGroup) GetRelations() []*Relation {
	if g == nil {
		return nil
	}
	return g.Relations
}
func (g *PrimitiveGroup) GetChangesets() []*ChangeSet {
	if g == nil {
		return nil
	}
	return g.Changesets
}

func (g *PrimitiveGroup) marshalInto(b []byte) []byte {
	for _, n := range g.Nodes {
		var inner []byte
		inner = n.marshalInto(inner)
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, inner)
	}
	if g.Dense != nil {
		var inner []byte
		inner = g.Dense.marshalInto(inner)
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, inner)
	}
	for _, w := range g.Ways {
		var inner []byte
		inner = w.marshalInto(inner)
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, inner)
	}
	for _, r := range g.Relations {
		var inner []byte
		inner = r.marshalInto(inner)
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendBytes(b, inner)
	}
	return b
}

func (g *PrimitiveGroup) unmarshal(buf []byte) error {
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return errTruncated
		}
		buf = buf[n:]
		v, n := protowire.ConsumeBytes(buf)
		if n < 0 {
			return errTruncated
		}
		buf = buf[n:]
		_ = typ
		switch num {
		case 1:
			node := &Node{}
			if err := node.unmarshal(v); err != nil {
				return err
			}
			g.Nodes = append(g.Nodes, node)
		case 2:
			dense := &DenseNodes{}
			if err := dense.unmarshal(v); err != nil {
				return err
			}
			g.Dense = dense
		case 3:
			way := &Way{}
			if err := way.unmarshal(v); err != nil {
				return err
			}
			g.Ways = append(g.Ways, way)
		case 4:
			rel := &Relation{}
			if err := rel.unmarshal(v); err != nil {
				return err
			}
			g.Relations = append(g.Relations, rel)
		case 5:
			cs := &ChangeSet{}
			// id is field 1, varint, required; decode inline.
			cv, _, cn := protowire.ConsumeTag(v)
			_ = cv
			if cn > 0 {
				if val, vn := protowire.ConsumeVarint(v[cn:]); vn >= 0 {
					cs.Id = int64(val)
				}
			}
			g.Changesets = append(g.Changesets, cs)
		}
	}
	return nil
}

// PrimitiveBlock is the payload of an "OSMData" Blob: a string table
// shared by every group, the groups themselves, and the granularity
// parameters used to scale every delta-encoded coordinate/timestamp.
type PrimitiveBlock struct {
	Stringtable      *StringTable
	Primitivegroup   []*PrimitiveGroup
	Granularity      int32
	LatOffset        int64
	LonOffset        int64
	DateGranularity  int32
}

func (p *PrimitiveBlock) GetStringtable() *StringTable {
	if p == nil {
		return nil
	}
	return p.Stringtable
}
func (p *PrimitiveBlock) GetPrimitivegroup() []*PrimitiveGroup {
	if p == nil {
		return nil
	}
	return p.Primitivegroup
}
func (p *PrimitiveBlock) GetGranularity() int32 {
	if p == nil || p.Granularity == 0 {
		return 100
	}
	return p.Granularity
}
func (p *PrimitiveBlock) GetLatOffset() int64 {
	if p == nil {
		return 0
	}
	return p.LatOffset
}
func (p *PrimitiveBlock) GetLonOffset() int64 {
	if p == nil {
		return 0
	}
	return p.LonOffset
}
func (p *PrimitiveBlock) GetDateGranularity() int32 {
	if p == nil || p.DateGranularity == 0 {
		return 1000
	}
	return p.DateGranularity
}

func (p *PrimitiveBlock) Marshal() ([]byte, error) {
	var b []byte
	if p.Stringtable != nil {
		var inner []byte
		inner = p.Stringtable.marshalInto(inner)
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, inner)
	}
	for _, g := range p.Primitivegroup {
		var inner []byte
		inner = g.marshalInto(inner)
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, inner)
	}
	if p.Granularity != 0 && p.Granularity != 100 {
		b = protowire.AppendTag(b, 17, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(uint32(p.Granularity)))
	}
	if p.LatOffset != 0 {
		b = protowire.AppendTag(b, 19, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(p.LatOffset))
	}
	if p.LonOffset != 0 {
		b = protowire.AppendTag(b, 20, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(p.LonOffset))
	}
	if p.DateGranularity != 0 && p.DateGranularity != 1000 {
		b = protowire.AppendTag(b, 18, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(uint32(p.DateGranularity)))
	}
	return b, nil
}

func (p *PrimitiveBlock) Unmarshal(buf []byte) error {
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return errTruncated
		}
		buf = buf[n:]
		switch num {
		case 1:
			v, m := protowire.ConsumeBytes(buf)
			if m < 0 {
				return errTruncated
			}
			st := &StringTable{}
			if err := st.unmarshal(v); err != nil {
				return err
			}
			p.Stringtable = st
			buf = buf[m:]
		case 2:
			v, m := protowire.ConsumeBytes(buf)
			if m < 0 {
				return errTruncated
			}
			g := &PrimitiveGroup{}
			if err := g.unmarshal(v); err != nil {
				return err
			}
			p.Primitivegroup = append(p.Primitivegroup, g)
			buf = buf[m:]
		case 17:
			v, m := protowire.ConsumeVarint(buf)
			if m < 0 {
				return errTruncated
			}
			p.Granularity = int32(v)
			buf = buf[m:]
		case 19:
			v, m := protowire.ConsumeVarint(buf)
			if m < 0 {
				return errTruncated
			}
			p.LatOffset = int64(v)
			buf = buf[m:]
		case 20:
			v, m := protowire.ConsumeVarint(buf)
			if m < 0 {
				return errTruncated
			}
			p.LonOffset = int64(v)
			buf = buf[m:]
		case 18:
			v, m := protowire.ConsumeVarint(buf)
			if m < 0 {
				return errTruncated
			}
			p.DateGranularity = int32(v)
			buf = buf[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, buf)
			if m < 0 {
				return errTruncated
			}
			buf = buf[m:]
		}
	}
	return nil
}
