package deck

import (
	"fmt"
)

type makeNewGeneralErrorFuncType = func(message string, formatedValues ...interface{}) error
type makeNewIDErrorFuncType = func(
	id interface{}, message string, formatedValues ...interface{},
) error

// GeneralGeomError ...
var GeneralGeomError = makeNewGeneralErrorFunc("geometry")

// GeneralZoneError ...
var GeneralZoneError = makeNewGeneralErrorFunc("zones")

// GeneralMatError ...
var GeneralMatError = makeNewGeneralErrorFunc("materials")

// GeneralProblemError ...
var GeneralProblemError = makeNewGeneralErrorFunc("problem")

// VoxelIDError ...
var VoxelIDError = makeNewIDErrorFunc("Voxel", "zones")

// RegionIDError ...
var RegionIDError = makeNewIDErrorFunc("Region", "zones")

// MaterialIDError ...
var MaterialIDError = makeNewIDErrorFunc("Material", "materials")

func makeNewGeneralErrorFunc(blockName string) makeNewGeneralErrorFuncType {
	return func(message string, formatedValues ...interface{}) error {
		return fmt.Errorf("[deck] "+blockName+": "+message, formatedValues...)
	}
}

func makeNewIDErrorFunc(modelName, blockName string) makeNewIDErrorFuncType {
	return func(id interface{}, message string, formatedValues ...interface{}) error {
		header := fmt.Sprintf("[deck] %s{Id: %v} -> %s: ", modelName, id, blockName)
		return fmt.Errorf(header+message, formatedValues...)
	}
}
