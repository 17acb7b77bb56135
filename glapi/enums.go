package glapi

const (
	NO_ERROR = 0x0

	// Framebuffers
	FRAMEBUFFER                               = 0x8D40
	READ_FRAMEBUFFER                          = 0x8CA8
	DRAW_FRAMEBUFFER                          = 0x8CA9
	RENDERBUFFER                              = 0x8D41
	COLOR_ATTACHMENT0                         = 0x8CE0
	DEPTH_ATTACHMENT                          = 0x8D00
	NONE                                      = 0x0
	FRAMEBUFFER_COMPLETE                      = 0x8CD5
	FRAMEBUFFER_UNDEFINED                     = 0x8219
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT         = 0x8CD6
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT = 0x8CD7
	FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER        = 0x8CDB
	FRAMEBUFFER_INCOMPLETE_READ_BUFFER        = 0x8CDC
	FRAMEBUFFER_UNSUPPORTED                   = 0x8CDD
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE        = 0x8D56
	FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS      = 0x8DA8

	// Textures
	TEXTURE_2D             = 0x0DE1
	TEXTURE_2D_MULTISAMPLE = 0x9100
	TEXTURE_MAG_FILTER     = 0x2800
	TEXTURE_MIN_FILTER     = 0x2801
	NEAREST                = 0x2600
	LINEAR                 = 0x2601

	// State
	SCISSOR_TEST     = 0x0C11
	VIEWPORT         = 0x0BA2
	PACK_ALIGNMENT   = 0x0D05
	UNPACK_ALIGNMENT = 0x0CF5

	// ClearBuffer targets
	COLOR = 0x1800
	DEPTH = 0x1801

	// Strings
	VENDOR                   = 0x1F00
	RENDERER                 = 0x1F01
	VERSION                  = 0x1F02
	EXTENSIONS               = 0x1F03
	SHADING_LANGUAGE_VERSION = 0x8B8C
	NUM_EXTENSIONS           = 0x821D

	// Pixel types
	BYTE           = 0x1400
	UNSIGNED_BYTE  = 0x1401
	SHORT          = 0x1402
	UNSIGNED_SHORT = 0x1403
	INT            = 0x1404
	UNSIGNED_INT   = 0x1405
	FLOAT          = 0x1406
	HALF_FLOAT     = 0x140B

	// Pixel formats
	DEPTH_COMPONENT = 0x1902
	RED             = 0x1903
	RG              = 0x8227
	RGB             = 0x1907
	RGBA            = 0x1908
	RED_INTEGER     = 0x8D94
	RG_INTEGER      = 0x8228
	RGB_INTEGER     = 0x8D98
	RGBA_INTEGER    = 0x8D99

	// Internal formats
	R8                 = 0x8229
	RG8                = 0x822B
	RGB8               = 0x8051
	RGBA8              = 0x8058
	R16F               = 0x822D
	RG16F              = 0x822F
	RGB16F             = 0x881B
	RGBA16F            = 0x881A
	R32F               = 0x822E
	RG32F              = 0x8230
	RGB32F             = 0x8815
	RGBA32F            = 0x8814
	R8UI               = 0x8232
	RG8UI              = 0x8238
	RGB8UI             = 0x8D7D
	RGBA8UI            = 0x8D7C
	R16UI              = 0x8234
	RG16UI             = 0x823A
	RGB16UI            = 0x8D77
	RGBA16UI           = 0x8D76
	R32UI              = 0x8236
	RG32UI             = 0x823C
	RGB32UI            = 0x8D71
	RGBA32UI           = 0x8D70
	R8I                = 0x8231
	RG8I               = 0x8237
	RGB8I              = 0x8D8F
	RGBA8I             = 0x8D8E
	R16I               = 0x8233
	RG16I              = 0x8239
	RGB16I             = 0x8D89
	RGBA16I            = 0x8D88
	R32I               = 0x8235
	RG32I              = 0x823B
	RGB32I             = 0x8D83
	RGBA32I            = 0x8D82
	DEPTH_COMPONENT24  = 0x81A6
	DEPTH_COMPONENT32F = 0x8CAC
)

const (
	MULTISAMPLE = 0x809D
)
