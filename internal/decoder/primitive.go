// Copyright 2017-25 the original author or authors.
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

package decoder

import (
	"fmt"
	"time"

	"github.com/brindlewood/osmpbf/internal/core"
	"github.com/brindlewood/osmpbf/internal/pb"
	"github.com/brindlewood/osmpbf/model"
)

func parsePrimitiveBlock(buf []byte) ([]model.Entity, error) {
	blk := &pb.PrimitiveBlock{}
	if err := blk.Unmarshal(buf); err != nil {
		return nil, fmt.Errorf("%w: unmarshaling primitive block: %v", core.ErrMalformed, err)
	}

	c := newBlockContext(blk)

	entities := make([]model.Entity, 0)
	for _, pg := range blk.GetPrimitivegroup() {
		if len(pg.GetChangesets()) > 0 {
			return nil, core.ErrUnsupportedChangesetGroup
		}

		nodes, err := c.decodeNodes(pg.GetNodes())
		if err != nil {
			return nil, err
		}
		entities = append(entities, nodes...)

		dense, err := c.decodeDenseNodes(pg.GetDense())
		if err != nil {
			return nil, err
		}
		entities = append(entities, dense...)

		ways, err := c.decodeWays(pg.GetWays())
		if err != nil {
			return nil, err
		}
		entities = append(entities, ways...)

		relations, err := c.decodeRelations(pg.GetRelations())
		if err != nil {
			return nil, err
		}
		entities = append(entities, relations...)
	}

	return entities, nil
}

type blockContext struct {
	strings         []string
	granularity     int32
	latOffset       int64
	lonOffset       int64
	dateGranularity int32
}

func newBlockContext(blk *pb.PrimitiveBlock) *blockContext {
	raw := blk.GetStringtable().GetS()
	strings := make([]string, len(raw))
	for i, s := range raw {
		strings[i] = string(s)
	}

	return &blockContext{
		strings:         strings,
		granularity:     blk.GetGranularity(),
		latOffset:       blk.GetLatOffset(),
		lonOffset:       blk.GetLonOffset(),
		dateGranularity: blk.GetDateGranularity(),
	}
}

func (c *blockContext) stringAt(idx uint32) (string, error) {
	if int(idx) >= len(c.strings) {
		return "", fmt.Errorf("%w: index %d, table size %d", core.ErrStringTableIndex, idx, len(c.strings))
	}
	return c.strings[idx], nil
}

func (c *blockContext) decodeNodes(nodes []*pb.Node) ([]model.Entity, error) {
	entities := make([]model.Entity, len(nodes))

	for i, node := range nodes {
		tags, err := c.decodeTags(node.GetKeys(), node.GetVals())
		if err != nil {
			return nil, err
		}

		info, err := c.decodeInfo(node.GetInfo())
		if err != nil {
			return nil, err
		}

		entities[i] = &model.Node{
			ID:   model.ID(node.GetId()),
			Tags: tags,
			Info: info,
			Lat:  model.ToDegrees(c.latOffset, c.granularity, node.GetLat()),
			Lon:  model.ToDegrees(c.lonOffset, c.granularity, node.GetLon()),
		}
	}

	return entities, nil
}

func (c *blockContext) decodeDenseNodes(nodes *pb.DenseNodes) ([]model.Entity, error) {
	ids := nodes.GetId()
	entities := make([]model.Entity, len(ids))

	tic := c.newTagsContext(nodes.GetKeysVals())
	dic := c.newDenseInfoContext(nodes.GetDenseinfo())
	lats := nodes.GetLat()
	lons := nodes.GetLon()

	var id, lat, lon int64
	for i := range ids {
		id += ids[i]
		lat += lats[i]
		lon += lons[i]

		tags, err := tic.decodeTags()
		if err != nil {
			return nil, err
		}

		info, err := dic.decodeInfo(i)
		if err != nil {
			return nil, err
		}

		entities[i] = &model.Node{
			ID:   model.ID(id),
			Tags: tags,
			Info: info,
			Lat:  model.ToDegrees(c.latOffset, c.granularity, lat),
			Lon:  model.ToDegrees(c.lonOffset, c.granularity, lon),
		}
	}

	return entities, nil
}

func (c *blockContext) decodeWays(nodes []*pb.Way) ([]model.Entity, error) {
	entities := make([]model.Entity, len(nodes))

	for i, node := range nodes {
		refs := node.GetRefs()
		nodeIDs := make([]model.ID, len(refs))

		var nodeID int64
		for j, delta := range refs {
			nodeID += delta
			nodeIDs[j] = model.ID(nodeID)
		}

		tags, err := c.decodeTags(node.GetKeys(), node.GetVals())
		if err != nil {
			return nil, err
		}

		info, err := c.decodeInfo(node.GetInfo())
		if err != nil {
			return nil, err
		}

		entities[i] = &model.Way{
			ID:      model.ID(node.GetId()),
			Tags:    tags,
			NodeIDs: nodeIDs,
			Info:    info,
		}
	}

	return entities, nil
}

func (c *blockContext) decodeRelations(nodes []*pb.Relation) ([]model.Entity, error) {
	entities := make([]model.Entity, len(nodes))

	for i, node := range nodes {
		tags, err := c.decodeTags(node.GetKeys(), node.GetVals())
		if err != nil {
			return nil, err
		}

		info, err := c.decodeInfo(node.GetInfo())
		if err != nil {
			return nil, err
		}

		members, err := c.decodeMembers(node)
		if err != nil {
			return nil, err
		}

		entities[i] = &model.Relation{
			ID:      model.ID(node.GetId()),
			Tags:    tags,
			Info:    info,
			Members: members,
		}
	}

	return entities, nil
}

func (c *blockContext) decodeMembers(node *pb.Relation) ([]model.Member, error) {
	memids := node.GetMemids()
	memtypes := node.GetTypes()
	memroles := node.GetRolesSid()

	if len(memtypes) != len(memids) || len(memroles) != len(memids) {
		return nil, fmt.Errorf("%w: relation %d has mismatched member arrays", core.ErrMalformed, node.GetId())
	}

	members := make([]model.Member, len(memids))

	var memid int64
	for i := range memids {
		memid += memids[i]

		typ, err := decodeMemberType(memtypes[i])
		if err != nil {
			return nil, err
		}

		role, err := c.stringAt(uint32(memroles[i]))
		if err != nil {
			return nil, err
		}

		members[i] = model.Member{
			ID:   model.ID(memid),
			Type: typ,
			Role: role,
		}
	}

	return members, nil
}

func (c *blockContext) decodeTags(keyIDs, valIDs []uint32) (map[string]string, error) {
	if len(keyIDs) != len(valIDs) {
		return nil, fmt.Errorf("%w: mismatched keys/vals arrays", core.ErrMalformed)
	}

	tags := make(map[string]string, len(keyIDs))

	for i, keyID := range keyIDs {
		key, err := c.stringAt(keyID)
		if err != nil {
			return nil, err
		}

		val, err := c.stringAt(valIDs[i])
		if err != nil {
			return nil, err
		}

		tags[key] = val
	}

	return tags, nil
}

func (c *blockContext) decodeInfo(info *pb.Info) (*model.Info, error) {
	i := &model.Info{Changeset: -1, UID: -1, Visible: true}
	if info != nil {
		i.Version = info.GetVersion()
		i.Timestamp = toTimestamp(c.dateGranularity, info.GetTimestamp())
		i.Changeset = info.GetChangeset()
		i.UID = model.UID(info.GetUid())

		user, err := c.stringAt(info.GetUserSid())
		if err != nil {
			return nil, err
		}
		i.User = user

		i.Visible = info.GetVisible()
	}

	return i, nil
}

func (c *blockContext) newDenseInfoContext(di *pb.DenseInfo) *denseInfoContext {
	uids := make([]model.UID, len(di.GetUid()))
	for i, uid := range di.GetUid() {
		uids[i] = model.UID(uid)
	}

	dic := &denseInfoContext{
		blockContext: c,
		versions:     di.GetVersion(),
		uids:         uids,
		timestamps:   di.GetTimestamp(),
		changesets:   di.GetChangeset(),
		userSids:     di.GetUserSid(),
		visibilities: di.GetVisible(),
	}

	if di == nil {
		dic.changeset = -1
		dic.uid = -1
	}

	return dic
}

// denseInfoContext accumulates the per-node delta runs of a
// DenseInfo. When denseinfo itself is absent from the wire, changeset
// and uid stay at their -1 sentinel default for the whole block;
// DenseInfo, when present, always resets every accumulator to 0 at the
// start of the block.
type denseInfoContext struct {
	*blockContext

	version   int32
	timestamp int64
	changeset int64
	uid       model.UID
	userSid   int32

	versions     []int32
	uids         []model.UID
	timestamps   []int64
	changesets   []int64
	userSids     []int32
	visibilities []bool
}

func (dic *denseInfoContext) decodeInfo(i int) (*model.Info, error) {
	if len(dic.versions) == 0 {
		// DenseInfo itself was absent: every node gets the same
		// sentinel Info, matching the sparse absent-Info defaults.
		return &model.Info{Changeset: -1, UID: -1, Visible: true}, nil
	}

	dic.version += dic.versions[i]
	dic.uid += dic.uids[i]
	dic.timestamp += dic.timestamps[i]
	dic.changeset += dic.changesets[i]
	dic.userSid += dic.userSids[i]

	user, err := dic.stringAt(uint32(dic.userSid))
	if err != nil {
		return nil, err
	}

	info := &model.Info{
		Version:   dic.version,
		UID:       dic.uid,
		Timestamp: toTimestamp(dic.dateGranularity, dic.timestamp),
		Changeset: dic.changeset,
		User:      user,
		Visible:   true,
	}

	if len(dic.visibilities) != 0 {
		info.Visible = dic.visibilities[i]
	}

	return info, nil
}

type tagsContext struct {
	*blockContext
	i       int
	keyVals []int32
}

func (c *blockContext) newTagsContext(keyVals []int32) *tagsContext {
	return &tagsContext{blockContext: c, keyVals: keyVals}
}

func (tic *tagsContext) decodeTags() (map[string]string, error) {
	if tic.keyVals == nil {
		return map[string]string{}, nil
	}

	tags := make(map[string]string)
	i := tic.i

	for {
		if i >= len(tic.keyVals) {
			return nil, fmt.Errorf("%w: keys_vals run missing terminating zero", core.ErrMalformedDenseTags)
		}
		if tic.keyVals[i] == 0 {
			break
		}
		if i+1 >= len(tic.keyVals) {
			return nil, fmt.Errorf("%w: key index %d has no matching value index", core.ErrMalformedDenseTags, i)
		}

		key, err := tic.stringAt(uint32(tic.keyVals[i]))
		if err != nil {
			return nil, err
		}
		val, err := tic.stringAt(uint32(tic.keyVals[i+1]))
		if err != nil {
			return nil, err
		}

		tags[key] = val
		i += 2
	}

	tic.i = i + 1

	return tags, nil
}

// decodeMemberType converts the wire Relation_MemberType to a
// model.EntityType, rejecting anything else rather than panicking.
func decodeMemberType(mt pb.Relation_MemberType) (model.EntityType, error) {
	switch mt {
	case pb.Relation_NODE:
		return model.NODE, nil
	case pb.Relation_WAY:
		return model.WAY, nil
	case pb.Relation_RELATION:
		return model.RELATION, nil
	default:
		return 0, fmt.Errorf("%w: %d", core.ErrUnknownMemberType, mt)
	}
}

// toTimestamp converts a timestamp with a specific granularity, in
// units of milliseconds, to a UTC time.Time.
func toTimestamp(granularity int32, timestamp int64) time.Time {
	return time.UnixMilli(timestamp * int64(granularity)).UTC()
}
