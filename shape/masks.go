package shape

const (
	x = true
	o = false
)

// masks is indexed [kind][rotation]. Each layout is spelled out rather than
// derived by rotating a base matrix, so the silhouettes stay exact.
var masks = [Count][4]Mask{
	I: {
		R0: {
			{o, o, o, o},
			{x, x, x, x},
			{o, o, o, o},
			{o, o, o, o},
		},
		R90: {
			{o, o, x, o},
			{o, o, x, o},
			{o, o, x, o},
			{o, o, x, o},
		},
		R180: {
			{o, o, o, o},
			{o, o, o, o},
			{x, x, x, x},
			{o, o, o, o},
		},
		R270: {
			{o, x, o, o},
			{o, x, o, o},
			{o, x, o, o},
			{o, x, o, o},
		},
	},
	J: {
		R0: {
			{x, o, o, o},
			{x, x, x, o},
			{o, o, o, o},
			{o, o, o, o},
		},
		R90: {
			{o, x, x, o},
			{o, x, o, o},
			{o, x, o, o},
			{o, o, o, o},
		},
		R180: {
			{o, o, o, o},
			{x, x, x, o},
			{o, o, x, o},
			{o, o, o, o},
		},
		R270: {
			{o, x, o, o},
			{o, x, o, o},
			{x, x, o, o},
			{o, o, o, o},
		},
	},
	L: {
		R0: {
			{o, o, x, o},
			{x, x, x, o},
			{o, o, o, o},
			{o, o, o, o},
		},
		R90: {
			{o, x, o, o},
			{o, x, o, o},
			{o, x, x, o},
			{o, o, o, o},
		},
		R180: {
			{o, o, o, o},
			{x, x, x, o},
			{x, o, o, o},
			{o, o, o, o},
		},
		R270: {
			{x, x, o, o},
			{o, x, o, o},
			{o, x, o, o},
			{o, o, o, o},
		},
	},
	O: {
		R0:   oMask,
		R90:  oMask,
		R180: oMask,
		R270: oMask,
	},
	S: {
		R0: {
			{o, x, x, o},
			{x, x, o, o},
			{o, o, o, o},
			{o, o, o, o},
		},
		R90: {
			{o, x, o, o},
			{o, x, x, o},
			{o, o, x, o},
			{o, o, o, o},
		},
		R180: {
			{o, o, o, o},
			{o, x, x, o},
			{x, x, o, o},
			{o, o, o, o},
		},
		R270: {
			{x, o, o, o},
			{x, x, o, o},
			{o, x, o, o},
			{o, o, o, o},
		},
	},
	Z: {
		R0: {
			{x, x, o, o},
			{o, x, x, o},
			{o, o, o, o},
			{o, o, o, o},
		},
		R90: {
			{o, x, o, o},
			{x, x, o, o},
			{x, o, o, o},
			{o, o, o, o},
		},
		R180: {
			{o, o, o, o},
			{x, x, o, o},
			{o, x, x, o},
			{o, o, o, o},
		},
		R270: {
			{o, o, x, o},
			{o, x, x, o},
			{o, x, o, o},
			{o, o, o, o},
		},
	},
	T: {
		R0: {
			{o, x, o, o},
			{x, x, x, o},
			{o, o, o, o},
			{o, o, o, o},
		},
		R90: {
			{o, x, o, o},
			{o, x, x, o},
			{o, x, o, o},
			{o, o, o, o},
		},
		R180: {
			{o, o, o, o},
			{x, x, x, o},
			{o, x, o, o},
			{o, o, o, o},
		},
		R270: {
			{o, x, o, o},
			{x, x, o, o},
			{o, x, o, o},
			{o, o, o, o},
		},
	},
}

var oMask = Mask{
	{o, o, o, o},
	{o, x, x, o},
	{o, x, x, o},
	{o, o, o, o},
}
