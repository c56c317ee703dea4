package ir

import "testing"

func TestGoNameIDSuffix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "id", want: "ID"},
		{in: "item_id", want: "ItemID"},
		{in: "command_id", want: "CommandID"},
		{in: "clientFlipId", want: "ClientFlipID"},
		{in: "id_value", want: "IdValue"},
		{in: "first_name", want: "FirstName"},
		{in: "packedSamples", want: "PackedSamples"},
	}

	for _, tc := range tests {
		got := GoName(tc.in)
		if got != tc.want {
			t.Fatalf("GoName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNamesTypeName(t *testing.T) {
	tests := []struct {
		pkg      string
		fullName string
		want     string
	}{
		{pkg: "demo", fullName: "demo.Person", want: "Person"},
		{pkg: "demo", fullName: "demo.Person.PhoneNumber", want: "Person_PhoneNumber"},
		{pkg: "", fullName: "Person.kind", want: "Person_Kind"},
		{pkg: "a.b", fullName: "a.b.Outer.Inner.Leaf", want: "Outer_Inner_Leaf"},
	}
	for _, tc := range tests {
		got := Names{}.TypeName(tc.pkg, tc.fullName)
		if got != tc.want {
			t.Fatalf("TypeName(%q, %q) = %q, want %q", tc.pkg, tc.fullName, got, tc.want)
		}
	}
}

func TestNamesAvoidReservedWords(t *testing.T) {
	names := Names{}
	if got := names.FieldName("hash"); got != "Hash_" {
		t.Fatalf("FieldName(hash) = %q", got)
	}
	if got := names.FieldName("serialized_size"); got != "SerializedSize_" {
		t.Fatalf("FieldName(serialized_size) = %q", got)
	}
	if got := names.FieldName("from"); got != "From_" {
		t.Fatalf("FieldName(from) = %q", got)
	}
	if got := names.StorageName("unknown_fields"); got != "unknownFields_" {
		t.Fatalf("StorageName(unknown_fields) = %q", got)
	}
	if got := names.StorageName("type"); got != "type_" {
		t.Fatalf("StorageName(type) = %q", got)
	}
	if got := names.StorageName("user_id"); got != "userID" {
		t.Fatalf("StorageName(user_id) = %q", got)
	}
	if got := names.StorageName("id"); got != "id" {
		t.Fatalf("StorageName(id) = %q", got)
	}
	if got := names.ExtensionName("Person", "nick_name"); got != "E_Person_NickName" {
		t.Fatalf("ExtensionName = %q", got)
	}
}
