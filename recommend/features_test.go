package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testColumns = []string{
	"Temparature", "Humidity", "Moisture", "Nitrogen", "Potassium", "Phosphorous",
	"Soil_Type_Loamy", "Soil_Type_Sandy",
	"Crop_Type_Sugarcane", "Crop_Type_Wheat",
}

func TestNewBuilder_MissingNumericColumn(t *testing.T) {
	_, err := NewBuilder([]string{"Temparature", "Humidity"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Moisture")
}

func TestBuild_SchemaAlignment(t *testing.T) {
	b, err := NewBuilder(testColumns, nil)
	require.NoError(t, err)

	in := Input{
		Temparature: 34,
		Humidity:    65,
		Moisture:    54,
		SoilTypeID:  2,
		CropTypeID:  10,
		Nitrogen:    38,
		Potassium:   0,
		Phosphorous: 0,
	}
	row := b.Build(in, "Loamy", "Sugarcane")

	require.Len(t, row, len(testColumns))
	assert.Equal(t, []float64{
		34, 65, 54, 38, 0, 0, // numeric fields in schema order
		1, 0, // Soil_Type_Loamy set, Soil_Type_Sandy zero
		1, 0, // Crop_Type_Sugarcane set, Crop_Type_Wheat zero
	}, row)
}

func TestBuild_UnknownOneHotStaysZero(t *testing.T) {
	b, err := NewBuilder(testColumns, nil)
	require.NoError(t, err)

	row := b.Build(Input{Temparature: 20}, "Peaty", "Barley")

	// No soil or crop column gets set; the numeric fields still land.
	assert.Equal(t, 20.0, row[0])
	for _, i := range []int{6, 7, 8, 9} {
		assert.Zero(t, row[i])
	}
}

func TestBuild_FreshRowPerCall(t *testing.T) {
	b, err := NewBuilder(testColumns, nil)
	require.NoError(t, err)

	r1 := b.Build(Input{Temparature: 1}, "Loamy", "Wheat")
	r2 := b.Build(Input{Temparature: 2}, "Sandy", "Sugarcane")

	assert.Equal(t, 1.0, r1[0])
	assert.Equal(t, 2.0, r2[0])
	assert.Equal(t, 1.0, r1[6]) // Loamy
	assert.Zero(t, r2[6])
}
