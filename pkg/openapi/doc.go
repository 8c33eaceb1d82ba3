/*
Copyright 2025 Piotr Janik.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package openapi turns operation descriptors into HTTP requests and delivers typed
// results. An Operation names the method, path template and parameters of one call; a
// RequestBuilder fixes whether the answer is decoded or discarded; a Client executes it
// either synchronously (Execute) or with a completion callback (Go).
package openapi
