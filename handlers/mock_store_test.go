package handlers_test

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nitroxskg-dev/Real-Estate/store"
)

// memStore is an in-memory store.Store that understands the filter subset
// the handlers produce: plain equality, $gte/$lte, and case-insensitive
// $regex. Documents are held as bson.M, round-tripped through bson so
// decoding behaves like the driver.
type memStore struct {
	collections map[string][]bson.M
	failing     bool
}

func newMemStore() *memStore {
	return &memStore{collections: map[string][]bson.M{}}
}

func toDoc(v interface{}) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (m *memStore) Find(ctx context.Context, collection string, filter bson.M, opts store.FindOptions, results interface{}) error {
	if m.failing {
		return fmt.Errorf("store unavailable")
	}
	matched := []bson.M{}
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			matched = append(matched, doc)
		}
	}
	if opts.Sort != nil {
		key := opts.Sort[0].Key
		desc := false
		if dir, ok := opts.Sort[0].Value.(int); ok && dir < 0 {
			desc = true
		}
		sort.SliceStable(matched, func(i, j int) bool {
			cmp := compare(matched[i][key], matched[j][key])
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}
	if opts.Limit > 0 && int64(len(matched)) > opts.Limit {
		matched = matched[:opts.Limit]
	}

	slicePtr := reflect.ValueOf(results)
	sliceVal := slicePtr.Elem()
	elemType := sliceVal.Type().Elem()
	out := reflect.MakeSlice(sliceVal.Type(), 0, len(matched))
	for _, doc := range matched {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return err
		}
		elem := reflect.New(elemType)
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return err
		}
		out = reflect.Append(out, elem.Elem())
	}
	sliceVal.Set(out)
	return nil
}

func (m *memStore) FindOne(ctx context.Context, collection string, filter bson.M, result interface{}) error {
	if m.failing {
		return fmt.Errorf("store unavailable")
	}
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			raw, err := bson.Marshal(doc)
			if err != nil {
				return err
			}
			return bson.Unmarshal(raw, result)
		}
	}
	return store.ErrNotFound
}

func (m *memStore) InsertOne(ctx context.Context, collection string, doc interface{}) error {
	if m.failing {
		return fmt.Errorf("store unavailable")
	}
	converted, err := toDoc(doc)
	if err != nil {
		return err
	}
	m.collections[collection] = append(m.collections[collection], converted)
	return nil
}

func (m *memStore) InsertMany(ctx context.Context, collection string, docs []interface{}) error {
	for _, doc := range docs {
		if err := m.InsertOne(ctx, collection, doc); err != nil {
			return err
		}
	}
	return nil
}

func (m *memStore) UpdateOne(ctx context.Context, collection string, filter bson.M, update bson.M) error {
	if m.failing {
		return fmt.Errorf("store unavailable")
	}
	for i, doc := range m.collections[collection] {
		if matches(doc, filter) {
			if set, ok := update["$set"].(bson.M); ok {
				setDoc, err := toDoc(set)
				if err != nil {
					return err
				}
				for k, v := range setDoc {
					doc[k] = v
				}
				m.collections[collection][i] = doc
			}
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memStore) DeleteOne(ctx context.Context, collection string, filter bson.M) error {
	if m.failing {
		return fmt.Errorf("store unavailable")
	}
	for i, doc := range m.collections[collection] {
		if matches(doc, filter) {
			m.collections[collection] = append(m.collections[collection][:i], m.collections[collection][i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memStore) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	if m.failing {
		return 0, fmt.Errorf("store unavailable")
	}
	var count int64
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			count++
		}
	}
	return count, nil
}

func matches(doc bson.M, filter bson.M) bool {
	for key, cond := range filter {
		val := doc[key]
		switch cond := cond.(type) {
		case bson.M:
			for op, arg := range cond {
				switch op {
				case "$gte":
					if compare(val, arg) < 0 {
						return false
					}
				case "$lte":
					if compare(val, arg) > 0 {
						return false
					}
				case "$regex":
					pattern := arg.(string)
					if opts, ok := cond["$options"].(string); ok && opts == "i" {
						pattern = "(?i)" + pattern
					}
					s, _ := val.(string)
					if !regexp.MustCompile(pattern).MatchString(s) {
						return false
					}
				case "$options":
					// handled with $regex
				}
			}
		default:
			if compare(val, cond) != 0 {
				return false
			}
		}
	}
	return true
}

func compare(a, b interface{}) int {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	as := fmt.Sprintf("%v", a)
	bs := fmt.Sprintf("%v", b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case primitive.DateTime:
		return float64(v), true
	default:
		return 0, false
	}
}
