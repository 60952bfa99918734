package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_Value(t *testing.T) {
	v, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = StringList{"LL-AAAA0001", "LL-AAAA0002"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["LL-AAAA0001","LL-AAAA0002"]`, v)
}

func TestStringList_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    StringList
		wantErr bool
	}{
		{name: "nil", src: nil, want: StringList{}},
		{name: "empty string", src: "", want: StringList{}},
		{name: "json null", src: "null", want: StringList{}},
		{name: "string", src: `["LL-1"]`, want: StringList{"LL-1"}},
		{name: "bytes", src: []byte(`["LL-1","LL-2"]`), want: StringList{"LL-1", "LL-2"}},
		{name: "bad json", src: "{", wantErr: true},
		{name: "bad type", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l StringList
			err := l.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, l)
		})
	}
}
