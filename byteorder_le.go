//go:build 386 || amd64 || amd64p32 || arm || arm64 || loong64 || mipsle || mips64le || mips64p32le || ppc64le || riscv64 || wasm

package binview

// NativeEndian is the byte order of the target architecture.
const NativeEndian = LittleEndian
