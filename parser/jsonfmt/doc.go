// Package jsonfmt reads and writes the JSON interchange format:
//
//	{
//	  "vertices": [{"id": 0, "type": "POSE2D_ANGLE", "position": [0, 0], "rotation": [0]}],
//	  "edges": [{"type": "PRIOR2D_ANGLE", "vertices": [0], "restriction": [0, 0, 0],
//	             "informationMatrix": [1, 0, 0, 0, 1, 0, 0, 0, 1]}]
//	}
//
// Unknown fields are rejected. Both arrays must be present and non-empty.
package jsonfmt
