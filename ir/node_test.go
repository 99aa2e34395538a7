package ir

import (
	"testing"
)

func TestFromKeyValsOrder(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "z", Val: FromInt(1)},
		{Key: "a", Val: FromInt(2)},
		{Key: "m", Val: FromInt(3)},
	})
	if obj.Type != ObjectType {
		t.Fatalf("expected object, got %s", obj.Type)
	}
	want := []string{"z", "a", "m"}
	for i, key := range want {
		if obj.Fields[i].String != key {
			t.Errorf("field %d: got %q, want %q", i, obj.Fields[i].String, key)
		}
		if obj.Values[i].ParentField != key {
			t.Errorf("value %d: parent field %q, want %q", i, obj.Values[i].ParentField, key)
		}
	}
}

func TestGet(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "x", Val: FromString("hello")},
		{Key: "y", Val: Null()},
	})
	if v := Get(obj, "x"); v == nil || v.String != "hello" {
		t.Errorf("get x: %v", v)
	}
	if v := Get(obj, "y"); v == nil || v.Type != NullType {
		t.Errorf("get y: %v", v)
	}
	if v := Get(obj, "zz"); v != nil {
		t.Errorf("get zz: expected nil, got %v", v)
	}
}

func TestCloneIndependence(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "pts", Val: FromSlice([]*Node{FromInt(1), FromInt(2)})},
	})
	cp := obj.Clone()
	cp.Values[0].Values[0].Number = "99"
	if obj.Values[0].Values[0].Number != "1" {
		t.Errorf("clone shares number storage")
	}
	if cp.Values[0].Parent != cp {
		t.Errorf("clone parent links not rebuilt")
	}
}

func TestVisitOrder(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Node{FromInt(1)})},
		{Key: "b", Val: FromBool(true)},
	})
	var pre, post int
	err := obj.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// obj, array, 1, true
	if pre != 4 || post != 4 {
		t.Errorf("pre=%d post=%d, want 4/4", pre, post)
	}
}

func TestNumberLiterals(t *testing.T) {
	n := FromInt(42)
	if n.Number != "42" || n.Int64 == nil || *n.Int64 != 42 {
		t.Errorf("int node: %+v", n)
	}
	f := FromFloat(0.5)
	if f.Number != "0.5" || f.Float64 == nil {
		t.Errorf("float node: %+v", f)
	}
}
