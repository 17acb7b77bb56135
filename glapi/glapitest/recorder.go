// Package glapitest provides a glapi.Functions implementation that records
// every call instead of talking to a driver.
package glapitest

import (
	"github.com/bloeys/nmgl/glapi"
)

var _ glapi.Functions = &Recorder{}

// Call is one recorded GL call. Slice arguments are copied.
type Call struct {
	Name string
	Args []any
}

// Recorder tracks the small part of GL state that nmgl reads back
// (bound framebuffer, enabled capabilities, viewport) and lets tests script
// the values returned by queries.
type Recorder struct {
	Calls []Call

	// Status is returned by CheckFramebufferStatus. Defaults to FRAMEBUFFER_COMPLETE.
	Status glapi.Enum

	// FailGen makes every Gen* call return 0.
	FailGen bool

	// Integers answers GetIntegerv; missing keys leave data untouched.
	Integers map[glapi.Enum][]int32
	Strings  map[glapi.Enum]string
	Exts     []string

	// FillPixels, if set, is called by ReadPixels to produce pixel data.
	FillPixels func(x, y, width, height int32, format, ty glapi.Enum, pixels []byte)

	BoundFramebuffer uint32
	CurrentViewport  [4]int32
	Enabled          map[glapi.Enum]bool

	nextId uint32
}

func NewRecorder() *Recorder {
	return &Recorder{
		Status:   glapi.FRAMEBUFFER_COMPLETE,
		Integers: map[glapi.Enum][]int32{},
		Strings:  map[glapi.Enum]string{},
		Enabled:  map[glapi.Enum]bool{},
	}
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

// Named returns the recorded calls with the given name, in order.
func (r *Recorder) Named(name string) []Call {

	var out []Call
	for i := 0; i < len(r.Calls); i++ {
		if r.Calls[i].Name == name {
			out = append(out, r.Calls[i])
		}
	}

	return out
}

// Count returns how many times name was called.
func (r *Recorder) Count(name string) int {
	return len(r.Named(name))
}

// Last returns the most recent call with the given name.
func (r *Recorder) Last(name string) (Call, bool) {

	for i := len(r.Calls) - 1; i >= 0; i-- {
		if r.Calls[i].Name == name {
			return r.Calls[i], true
		}
	}

	return Call{}, false
}

// Names returns the names of all recorded calls, in order.
func (r *Recorder) Names() []string {

	names := make([]string, len(r.Calls))
	for i := 0; i < len(r.Calls); i++ {
		names[i] = r.Calls[i].Name
	}

	return names
}

// Reset clears the call log but keeps state and scripted values.
func (r *Recorder) Reset() {
	r.Calls = nil
}

func (r *Recorder) gen(name string) uint32 {

	if r.FailGen {
		r.record(name, uint32(0))
		return 0
	}

	r.nextId++
	r.record(name, r.nextId)
	return r.nextId
}

func (r *Recorder) GenFramebuffer() uint32 {
	return r.gen("GenFramebuffer")
}

func (r *Recorder) DeleteFramebuffer(id uint32) {
	r.record("DeleteFramebuffer", id)
}

func (r *Recorder) BindFramebuffer(target glapi.Enum, id uint32) {
	r.BoundFramebuffer = id
	r.record("BindFramebuffer", target, id)
}

func (r *Recorder) FramebufferTexture2D(target, attachment, texTarget glapi.Enum, texture uint32, level int32) {
	r.record("FramebufferTexture2D", target, attachment, texTarget, texture, level)
}

func (r *Recorder) FramebufferRenderbuffer(target, attachment, renderbufferTarget glapi.Enum, renderbuffer uint32) {
	r.record("FramebufferRenderbuffer", target, attachment, renderbufferTarget, renderbuffer)
}

func (r *Recorder) CheckFramebufferStatus(target glapi.Enum) glapi.Enum {
	r.record("CheckFramebufferStatus", target)
	return r.Status
}

func (r *Recorder) DrawBuffers(bufs []glapi.Enum) {
	cp := make([]glapi.Enum, len(bufs))
	copy(cp, bufs)
	r.record("DrawBuffers", cp)
}

func (r *Recorder) ReadBuffer(src glapi.Enum) {
	r.record("ReadBuffer", src)
}

func (r *Recorder) GenTexture() uint32 {
	return r.gen("GenTexture")
}

func (r *Recorder) DeleteTexture(id uint32) {
	r.record("DeleteTexture", id)
}

func (r *Recorder) BindTexture(target glapi.Enum, id uint32) {
	r.record("BindTexture", target, id)
}

func (r *Recorder) TexImage2D(target glapi.Enum, level int32, internalFormat glapi.Enum, width, height int32, format, ty glapi.Enum) {
	r.record("TexImage2D", target, level, internalFormat, width, height, format, ty)
}

func (r *Recorder) TexImage2DMultisample(target glapi.Enum, samples int32, internalFormat glapi.Enum, width, height int32, fixedSampleLocations bool) {
	r.record("TexImage2DMultisample", target, samples, internalFormat, width, height, fixedSampleLocations)
}

func (r *Recorder) TexParameteri(target, pname glapi.Enum, param int32) {
	r.record("TexParameteri", target, pname, param)
}

func (r *Recorder) GenRenderbuffer() uint32 {
	return r.gen("GenRenderbuffer")
}

func (r *Recorder) DeleteRenderbuffer(id uint32) {
	r.record("DeleteRenderbuffer", id)
}

func (r *Recorder) BindRenderbuffer(target glapi.Enum, id uint32) {
	r.record("BindRenderbuffer", target, id)
}

func (r *Recorder) RenderbufferStorage(target, internalFormat glapi.Enum, width, height int32) {
	r.record("RenderbufferStorage", target, internalFormat, width, height)
}

func (r *Recorder) RenderbufferStorageMultisample(target glapi.Enum, samples int32, internalFormat glapi.Enum, width, height int32) {
	r.record("RenderbufferStorageMultisample", target, samples, internalFormat, width, height)
}

func (r *Recorder) Enable(capability glapi.Enum) {
	r.Enabled[capability] = true
	r.record("Enable", capability)
}

func (r *Recorder) Disable(capability glapi.Enum) {
	r.Enabled[capability] = false
	r.record("Disable", capability)
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.CurrentViewport = [4]int32{x, y, width, height}
	r.record("Viewport", x, y, width, height)
}

func (r *Recorder) Scissor(x, y, width, height int32) {
	r.record("Scissor", x, y, width, height)
}

func (r *Recorder) ClearBufferfv(buffer glapi.Enum, drawBuffer int32, value []float32) {
	cp := make([]float32, len(value))
	copy(cp, value)
	r.record("ClearBufferfv", buffer, drawBuffer, cp)
}

func (r *Recorder) PixelStorei(pname glapi.Enum, param int32) {
	r.record("PixelStorei", pname, param)
}

func (r *Recorder) ReadPixels(x, y, width, height int32, format, ty glapi.Enum, pixels []byte) {

	if r.FillPixels != nil {
		r.FillPixels(x, y, width, height, format, ty, pixels)
	}

	r.record("ReadPixels", x, y, width, height, format, ty, len(pixels))
}

func (r *Recorder) GetIntegerv(pname glapi.Enum, data []int32) {

	if v, ok := r.Integers[pname]; ok {
		copy(data, v)
	}

	r.record("GetIntegerv", pname)
}

func (r *Recorder) GetString(name glapi.Enum) string {
	r.record("GetString", name)
	return r.Strings[name]
}

func (r *Recorder) GetStringi(name glapi.Enum, index uint32) string {

	r.record("GetStringi", name, index)
	if name != glapi.EXTENSIONS || int(index) >= len(r.Exts) {
		return ""
	}

	return r.Exts[index]
}

func (r *Recorder) GetError() glapi.Enum {
	r.record("GetError")
	return glapi.NO_ERROR
}
